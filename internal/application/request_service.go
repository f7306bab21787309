package application

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-platform/service-sharing/internal/apperror"
	itemDomain "github.com/shareit-platform/service-sharing/internal/domain/item"
	requestDomain "github.com/shareit-platform/service-sharing/internal/domain/request"
	userDomain "github.com/shareit-platform/service-sharing/internal/domain/user"
	"github.com/shareit-platform/service-sharing/internal/pagination"
)

// CreateItemRequestRequest is the request DTO for posting a want-ad.
type CreateItemRequestRequest struct {
	Description string `json:"description"`
}

// ItemRequestDTO is the API representation of an item request, with the items
// posted in answer to it.
type ItemRequestDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}

// RequestService implements use cases for item requests (want-ads).
type RequestService struct {
	requests requestDomain.Repository
	items    itemDomain.Repository
	users    userDomain.Repository
	logger   *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests requestDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{requests: requests, items: items, users: users, logger: logger}
}

// CreateRequest posts a new item request for the user.
func (s *RequestService) CreateRequest(ctx context.Context, requesterID int64, req CreateItemRequestRequest) (*ItemRequestDTO, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperror.NewValidationError("request description is required")
	}
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	ir := &requestDomain.ItemRequest{
		Description: req.Description,
		RequesterID: requesterID,
		Created:     time.Now().UTC(),
	}
	saved, err := s.requests.Save(ctx, ir)
	if err != nil {
		return nil, err
	}

	s.logger.Info("item request created",
		zap.Int64("request_id", saved.ID),
		zap.Int64("requester_id", requesterID),
	)
	return &ItemRequestDTO{
		ID:          saved.ID,
		Description: saved.Description,
		Created:     saved.Created,
		Items:       []ItemDTO{},
	}, nil
}

// GetOwnRequests lists the user's requests, each with the items answering it.
func (s *RequestService) GetOwnRequests(ctx context.Context, requesterID int64) ([]ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindByRequesterID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.assembleRequestDTOs(ctx, requests)
}

// GetOtherRequests lists requests posted by other users, paginated.
func (s *RequestService) GetOtherRequests(ctx context.Context, requesterID int64, from, size int) ([]ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	pg, err := pagination.New(from, size)
	if err != nil {
		return nil, err
	}

	requests, err := s.requests.FindAllOthers(ctx, requesterID, pg)
	if err != nil {
		return nil, err
	}
	return s.assembleRequestDTOs(ctx, requests)
}

// GetRequestByID retrieves a single request with its items.
func (s *RequestService) GetRequestByID(ctx context.Context, requesterID, requestID int64) (*ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	ir, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	dto, err := s.assembleRequestDTO(ctx, ir)
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (s *RequestService) assembleRequestDTOs(ctx context.Context, requests []*requestDomain.ItemRequest) ([]ItemRequestDTO, error) {
	dtos := make([]ItemRequestDTO, 0, len(requests))
	for _, ir := range requests {
		dto, err := s.assembleRequestDTO(ctx, ir)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *RequestService) assembleRequestDTO(ctx context.Context, ir *requestDomain.ItemRequest) (*ItemRequestDTO, error) {
	items, err := s.items.FindByRequestID(ctx, ir.ID)
	if err != nil {
		return nil, err
	}

	itemDTOs := make([]ItemDTO, len(items))
	for i, itm := range items {
		itemDTOs[i] = newItemDTO(itm)
	}

	return &ItemRequestDTO{
		ID:          ir.ID,
		Description: ir.Description,
		Created:     ir.Created,
		Items:       itemDTOs,
	}, nil
}
