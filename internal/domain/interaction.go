package domain

// InteractionType is a user's reaction to one listing.
type InteractionType string

const (
	InteractionLike    InteractionType = "LIKE"
	InteractionDislike InteractionType = "DISLIKE"
)

// Valid reports whether t is one of the accepted reaction values.
func (t InteractionType) Valid() bool {
	return t == InteractionLike || t == InteractionDislike
}

// Interaction records one user's current reaction to one listing. The
// (userId, dogId) pair is the table's composite key, so a later write for the
// same pair replaces the earlier one.
type Interaction struct {
	UserID      string          `json:"userId" dynamodbav:"userId"`
	DogID       string          `json:"dogId" dynamodbav:"dogId"`
	Interaction InteractionType `json:"interaction" dynamodbav:"interaction"`
	Timestamp   string          `json:"timestamp" dynamodbav:"timestamp"`
}
