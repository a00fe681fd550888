package models

import "time"

// Collection is a named, shareable grouping of tests.
type Collection struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	ShareSlug   string    `json:"shareSlug"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Collection model.
func (c Collection) TableName() string {
	return "collections"
}

// CollectionTest is the membership row of a test in a collection.
// (CollectionID, TestID) is unique.
type CollectionTest struct {
	CollectionID string    `json:"collectionId"`
	TestID       string    `json:"testId"`
	AddedAt      time.Time `json:"addedAt"`
}

// CollectionRequest carries the user-editable fields of a collection.
type CollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}

// AddTestRequest adds a test to a collection.
type AddTestRequest struct {
	TestID string `json:"testId"`
}

// CollectionWithTests is a collection together with the tests the reader is
// allowed to see.
type CollectionWithTests struct {
	Collection
	Tests []Test `json:"tests"`
}
