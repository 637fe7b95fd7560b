package domain

import "errors"

// ErrInvalidPageToken marks a continuation token that cannot be parsed back
// into a store cursor.
var ErrInvalidPageToken = errors.New("invalid pagination token")

// Dog is one adoptable-animal listing. The struct is the single shape for
// both the DynamoDB item and the JSON the API serves.
type Dog struct {
	ID               string `json:"id" dynamodbav:"id"`
	Name             string `json:"name" dynamodbav:"name"`
	Species          string `json:"species" dynamodbav:"species"`
	Shelter          string `json:"shelter" dynamodbav:"shelter"`
	City             string `json:"city" dynamodbav:"city"`
	State            string `json:"state" dynamodbav:"state"`
	Description      string `json:"description" dynamodbav:"description"`
	Birthday         string `json:"birthday" dynamodbav:"birthday"`
	WeightInPounds   int    `json:"weightInPounds" dynamodbav:"weightInPounds"`
	Color            string `json:"color" dynamodbav:"color"`
	Photo            string `json:"photo" dynamodbav:"photo"`
	OriginalPhoto    string `json:"originalPhoto" dynamodbav:"originalPhoto"`
	ThumbnailPhoto   string `json:"thumbnailPhoto" dynamodbav:"thumbnailPhoto"`
	ShelterEntryDate string `json:"shelterEntryDate" dynamodbav:"shelterEntryDate"`
}
