package dto

// Write-operation results mirror the store's acknowledgement counters so the
// frontend can inspect what actually happened.

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// PaymentResult carries both halves of the record-payment sequence; the two
// operations are not atomic and either counter may reflect a partial outcome.
type PaymentResult struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
