package messenger

import (
	"context"
	"net/url"
	"strings"

	"github.com/Yoctol/messaging-apis/errors"
)

// defaultProfileFields are requested when GetUserProfile is called without
// an explicit field list.
var defaultProfileFields = []string{"id", "first_name", "last_name", "profile_pic"}

// GetUserProfile retrieves a user's profile. fields selects the profile
// fields to fetch, given in the wire's snake_case names; when empty, the
// default set (id, name, picture) is requested.
func (c *Client) GetUserProfile(ctx context.Context, userID string, fields ...string) (*UserProfile, error) {
	if userID == "" {
		return nil, errors.New(errors.CodeInvalidInput, "user id cannot be empty")
	}

	if len(fields) == 0 {
		fields = defaultProfileFields
	}
	query := url.Values{"fields": {strings.Join(fields, ",")}}

	var out UserProfile
	if err := c.transport.Get(ctx, "/"+userID, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
