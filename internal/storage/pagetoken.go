package storage

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/pupperhq/pupper-api/internal/domain"
)

// EncodePageToken serializes a last-evaluated key into the opaque nextToken
// handed to clients. The token is a plain JSON object of the key attributes;
// callers pass it back unexamined.
func EncodePageToken(key map[string]types.AttributeValue) (string, error) {
	var plain map[string]interface{}
	if err := attributevalue.UnmarshalMap(key, &plain); err != nil {
		return "", fmt.Errorf("failed to encode page token: %w", err)
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("failed to encode page token: %w", err)
	}
	return string(b), nil
}

// DecodePageToken parses a client-supplied nextToken back into a scan cursor.
// Anything that is not a JSON object maps to domain.ErrInvalidPageToken.
func DecodePageToken(token string) (map[string]types.AttributeValue, error) {
	var plain map[string]interface{}
	if err := json.Unmarshal([]byte(token), &plain); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPageToken, err)
	}
	key, err := attributevalue.MarshalMap(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPageToken, err)
	}
	return key, nil
}
