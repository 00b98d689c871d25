package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-dice-registry/internal/api/shared/constants"
)

// PaginationQueryParams holds the common pagination query parameters
type PaginationQueryParams struct {
	Limit  int `form:"limit,default=0"`
	Offset int `form:"offset,default=0"`
}

// Validate checks the pagination bounds
func (p *PaginationQueryParams) Validate() error {
	if p.Limit < 0 || p.Limit > constants.MAX_PAGE_SIZE {
		return fmt.Errorf("limit must be between 1 and %d", constants.MAX_PAGE_SIZE)
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must be non-negative")
	}
	return nil
}

// ListListingsQueryParams holds query parameters for GET /market/listings
type ListListingsQueryParams struct {
	PaginationQueryParams
	Seller string `form:"seller"`
}

// ListEventsQueryParams holds query parameters for GET /events
type ListEventsQueryParams struct {
	After uint64 `form:"after,default=0"`
	Limit int    `form:"limit,default=0"`
}

// Validate checks the events page size
func (p *ListEventsQueryParams) Validate() error {
	if p.Limit < 0 || p.Limit > constants.MAX_PAGE_SIZE {
		return fmt.Errorf("limit must be between 1 and %d", constants.MAX_PAGE_SIZE)
	}
	return nil
}

// ParsePaginationQuery parses pagination query parameters
func ParsePaginationQuery(c *gin.Context) (*PaginationQueryParams, error) {
	var params PaginationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, params.Validate()
}

// ParseListListingsQuery parses query parameters for GET /market/listings
func ParseListListingsQuery(c *gin.Context) (*ListListingsQueryParams, error) {
	var params ListListingsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, params.Validate()
}

// ParseListEventsQuery parses query parameters for GET /events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, params.Validate()
}
