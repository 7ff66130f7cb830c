package models

// Fixed keys of the per-profile key-value store. Plain JSON, no versioning.
const (
	KVKeySession    = "session"
	KVKeyEventRSVPs = "eventRSVPs"
	KVKeyLikedItems = "likedNewsletters"
)

// KVEntry is one persisted value of a browser profile's store. One row per
// (profile, key); writes replace the previous value.
type KVEntry struct {
	BaseModel
	ProfileID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_kv_profile_key"`
	Key       string `gorm:"type:varchar(100);not null;uniqueIndex:idx_kv_profile_key"`
	Value     string `gorm:"type:text;not null"` // JSON-encoded
}
