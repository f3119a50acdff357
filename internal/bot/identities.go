package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Identity describes one AI seat persona.
type Identity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
}

// botUserIDPrefix marks AI seat identities so they are recognizable without
// consulting the identity pool.
const botUserIDPrefix = "bot-"

var defaultIdentities = []Identity{
	{UserID: "bot-finley", DisplayName: "Finley", Icon: "/assets/avatars/finley.png"},
	{UserID: "bot-marina", DisplayName: "Marina", Icon: "/assets/avatars/marina.png"},
	{UserID: "bot-gill", DisplayName: "Gill", Icon: "/assets/avatars/gill.png"},
	{UserID: "bot-coral", DisplayName: "Coral", Icon: "/assets/avatars/coral.png"},
	{UserID: "bot-sandy", DisplayName: "Sandy", Icon: "/assets/avatars/sandy.png"},
}

var (
	identities   []Identity
	identityByID map[string]Identity
	loadOnce     sync.Once
	loadErr      error
)

// LoadIdentities loads AI personas from the given JSON file. Without a load,
// or on a failed load, the built-in defaults apply.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		var loaded []Identity
		if err := json.Unmarshal(data, &loaded); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		identities = loaded
		identityByID = make(map[string]Identity, len(loaded))
		for _, identity := range loaded {
			identityByID[identity.UserID] = identity
		}
	})
	return loadErr
}

// GetIdentity returns an AI persona for the given seat index (mod pool size).
func GetIdentity(index int) Identity {
	pool := identities
	if len(pool) == 0 {
		pool = defaultIdentities
	}
	return pool[index%len(pool)]
}

// IsBot reports whether the given user ID belongs to an AI seat.
func IsBot(userID string) bool {
	if _, ok := identityByID[userID]; ok {
		return true
	}
	return strings.HasPrefix(userID, botUserIDPrefix)
}
