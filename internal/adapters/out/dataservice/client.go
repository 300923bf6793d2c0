// Package dataservice implements the StaffGroupResolver port against the
// staff data service HTTP API. The data service resolves the descendant
// closure of a group server-side, so one request returns every member of
// the group and its nested subgroups.
package dataservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	serviceName    = "data-service"
	statusActive   = "ACTIVE"
	defaultTimeout = 10 * time.Second
)

// Client is an HTTP client for the staff data service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a data service client for the given base URL.
// A non-positive timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// staffDTO mirrors the data service staff representation.
type staffDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Position string    `json:"position"`
	Status   string    `json:"status"`
}

// resolvedGroupDTO is one group of the resolved hierarchy with its direct
// members.
type resolvedGroupDTO struct {
	GroupID   uuid.UUID  `json:"group_id"`
	GroupName string     `json:"group_name"`
	Members   []staffDTO `json:"members"`
}

// apiResponse is the data service response envelope.
type apiResponse struct {
	Message string             `json:"message"`
	Data    []resolvedGroupDTO `json:"data"`
	Total   *uint64            `json:"total,omitempty"`
}

// ResolveMembers returns the active members of the group, deduplicated
// across subgroups and ordered by identifier.
//
// Returns errs.ObjectNotFoundError when the group does not exist and
// errs.ExternalServiceError on transport failures or server errors.
func (c *Client) ResolveMembers(ctx context.Context, groupID kernel.UUID) ([]ports.StaffMember, error) {
	if err := groupID.Validate(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/groups/%s/resolved-members", c.baseURL, groupID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("staffGroupId", groupID.String())
	case resp.StatusCode != http.StatusOK:
		return nil, errs.NewExternalServiceErrorWithCause(serviceName,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
	}

	return collectMembers(payload.Data)
}

// collectMembers flattens the per-group member lists into one deduplicated
// list of active members, sorted by ID for deterministic planning input.
func collectMembers(groups []resolvedGroupDTO) ([]ports.StaffMember, error) {
	seen := make(map[kernel.UUID]struct{})
	members := make([]ports.StaffMember, 0)

	for _, group := range groups {
		for _, member := range group.Members {
			if member.Status != statusActive {
				continue
			}

			id, err := kernel.UUIDFromBytes(member.ID[:])
			if err != nil {
				return nil, errs.NewExternalServiceErrorWithCause(serviceName, err)
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}

			members = append(members, ports.StaffMember{
				ID:   id,
				Name: member.Name,
			})
		}
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].ID.String() < members[j].ID.String()
	})

	return members, nil
}
