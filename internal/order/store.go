package order

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	bolt "go.etcd.io/bbolt"
)

var draftsBucket = []byte("drafts")

// DraftStore keeps one draft per user across restarts, the desk's only
// local durable state. A malformed stored payload reads as "no draft".
type DraftStore interface {
	Save(userID int64, draft Draft) error
	Load(userID int64) (*Draft, error)
	Clear(userID int64) error
}

type BoltDraftStore struct {
	db *bolt.DB
}

func NewBoltDraftStore(db *bolt.DB) (*BoltDraftStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(draftsBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare drafts bucket: %w", err)
	}
	return &BoltDraftStore{db: db}, nil
}

func (b *BoltDraftStore) Save(userID int64, draft Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(draftsBucket).Put(draftKey(userID), payload)
	})
}

func (b *BoltDraftStore) Load(userID int64) (*Draft, error) {
	var payload []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		if raw := tx.Bucket(draftsBucket).Get(draftKey(userID)); raw != nil {
			payload = append(payload, raw...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}

	draft := &Draft{}
	if err := json.Unmarshal(payload, draft); err != nil {
		slog.Warn("Discarding malformed stored draft", "error", err, "userID", userID)
		return nil, nil
	}
	return draft, nil
}

func (b *BoltDraftStore) Clear(userID int64) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(draftsBucket).Delete(draftKey(userID))
	})
}

func draftKey(userID int64) []byte {
	return []byte(strconv.FormatInt(userID, 10))
}
