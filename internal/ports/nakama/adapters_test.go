package nakama

import (
	"context"
	"errors"
	"testing"

	"gofish/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

type fakeStorage struct {
	writes  []*runtime.StorageWrite
	objects map[string]string
	err     error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string]string)}
}

func (f *fakeStorage) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.writes = append(f.writes, writes...)
	for _, w := range writes {
		f.objects[w.Collection+"/"+w.Key] = w.Value
	}
	return nil, nil
}

func (f *fakeStorage) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	if f.err != nil {
		return nil, f.err
	}
	var objects []*api.StorageObject
	for _, r := range reads {
		if value, ok := f.objects[r.Collection+"/"+r.Key]; ok {
			objects = append(objects, &api.StorageObject{
				Collection: r.Collection,
				Key:        r.Key,
				Value:      value,
			})
		}
	}
	return objects, nil
}

func TestMatchStoreRoundTrip(t *testing.T) {
	storage := newFakeStorage()
	store := NewNakamaMatchStore(storage)

	if err := store.Save(context.Background(), "m1", []byte(`{"id":"m1"}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(storage.writes) != 1 {
		t.Fatalf("write count = %d, want 1", len(storage.writes))
	}
	write := storage.writes[0]
	if write.Collection != matchCollection || write.Key != "m1" {
		t.Errorf("wrote to %s/%s, want %s/m1", write.Collection, write.Key, matchCollection)
	}
	if write.PermissionRead != runtime.STORAGE_PERMISSION_NO_READ || write.PermissionWrite != runtime.STORAGE_PERMISSION_NO_WRITE {
		t.Errorf("snapshot must stay server-owned, permissions = %v/%v", write.PermissionRead, write.PermissionWrite)
	}

	snapshot, err := store.Load(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(snapshot) != `{"id":"m1"}` {
		t.Errorf("snapshot = %s", snapshot)
	}
}

func TestMatchStoreLoadMissing(t *testing.T) {
	store := NewNakamaMatchStore(newFakeStorage())

	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, ports.ErrMatchNotFound) {
		t.Fatalf("err = %v, want ErrMatchNotFound", err)
	}
}

func TestMatchStoreStorageError(t *testing.T) {
	storage := newFakeStorage()
	storage.err = errors.New("storage down")
	store := NewNakamaMatchStore(storage)

	if err := store.Save(context.Background(), "m1", nil); err == nil {
		t.Errorf("Save swallowed the storage error")
	}
	if _, err := store.Load(context.Background(), "m1"); err == nil || errors.Is(err, ports.ErrMatchNotFound) {
		t.Errorf("Load err = %v, want the storage error", err)
	}
}

type sentNotification struct {
	userID     string
	subject    string
	content    map[string]interface{}
	code       int
	persistent bool
}

type fakeNotificationSender struct {
	sent []sentNotification
	err  error
}

func (f *fakeNotificationSender) NotificationSend(ctx context.Context, userID, subject string, content map[string]interface{}, code int, sender string, persistent bool) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentNotification{userID: userID, subject: subject, content: content, code: code, persistent: persistent})
	return nil
}

func TestNotifierMatchCreated(t *testing.T) {
	sender := &fakeNotificationSender{}
	notifier := NewNakamaNotifier(sender)

	if err := notifier.MatchCreated(context.Background(), "u1", "m1"); err != nil {
		t.Fatalf("MatchCreated: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent count = %d, want 1", len(sender.sent))
	}
	n := sender.sent[0]
	if n.userID != "u1" || n.subject != matchReadySubject || n.code != notificationCodeMatchReady {
		t.Errorf("notification = %+v", n)
	}
	if n.content["match_id"] != "m1" {
		t.Errorf("content = %v, want match_id m1", n.content)
	}
	if n.persistent {
		t.Errorf("match-ready notifications should not persist")
	}
}

func TestNotifierSendError(t *testing.T) {
	sender := &fakeNotificationSender{err: errors.New("socket gone")}
	notifier := NewNakamaNotifier(sender)

	if err := notifier.MatchCreated(context.Background(), "u1", "m1"); err == nil {
		t.Errorf("MatchCreated swallowed the send error")
	}
}

type walletCall struct {
	userID       string
	changeset    map[string]int64
	metadata     map[string]interface{}
	updateLedger bool
}

type fakeWalletUpdater struct {
	calls []walletCall
	err   error
}

func (f *fakeWalletUpdater) WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	f.calls = append(f.calls, walletCall{userID: userID, changeset: changeset, metadata: metadata, updateLedger: updateLedger})
	return changeset, nil, nil
}

func TestStatsAddWin(t *testing.T) {
	wallet := &fakeWalletUpdater{}
	stats := NewNakamaStats(wallet)

	if err := stats.AddWin(context.Background(), "u1", "m1"); err != nil {
		t.Fatalf("AddWin: %v", err)
	}
	if len(wallet.calls) != 1 {
		t.Fatalf("call count = %d, want 1", len(wallet.calls))
	}
	call := wallet.calls[0]
	if call.userID != "u1" || call.changeset["points"] != 1 {
		t.Errorf("call = %+v, want one point for u1", call)
	}
	if call.metadata["match_id"] != "m1" || call.metadata["reason"] != "match_won" {
		t.Errorf("metadata = %v", call.metadata)
	}
	if !call.updateLedger {
		t.Errorf("wins must be recorded in the wallet ledger")
	}
}

func TestStatsAddWinError(t *testing.T) {
	wallet := &fakeWalletUpdater{err: errors.New("wallet locked")}
	stats := NewNakamaStats(wallet)

	if err := stats.AddWin(context.Background(), "u1", "m1"); err == nil {
		t.Errorf("AddWin swallowed the wallet error")
	}
}
