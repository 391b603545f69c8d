package expenditure

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
	"github.com/0Hoxy/fixedExpenses/internal/domain/entity"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
	"github.com/0Hoxy/fixedExpenses/internal/domain/valueobject"
)

// DefaultPageLimit is the page size used when none is requested.
const DefaultPageLimit = 20

// ListExpendituresInput represents the input for listing a profile's expenditures.
type ListExpendituresInput struct {
	ProfileID  uuid.UUID
	CategoryID *uuid.UUID
	Search     string // Matches itemName or memo, case-insensitive
	Month      string // YYYY-MM; filters by resolved status for that month
	Paused     bool   // With Month set, selects paused instead of active
	Page       int
	Limit      int
}

// Pagination describes the page window of a list response.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int
	Limit       int
	HasNext     bool
	HasPrev     bool
}

// ListExpendituresOutput represents one page of expenditures.
type ListExpendituresOutput struct {
	Expenditures []*entity.ExpenditureWithCategory
	Pagination   Pagination
}

// ListExpendituresUseCase handles listing with filtering and pagination.
type ListExpendituresUseCase struct {
	profileRepo     adapter.ProfileRepository
	expenditureRepo adapter.ExpenditureRepository
	statusRepo      adapter.StatusHistoryRepository
}

// NewListExpendituresUseCase creates a new ListExpendituresUseCase instance.
func NewListExpendituresUseCase(
	profileRepo adapter.ProfileRepository,
	expenditureRepo adapter.ExpenditureRepository,
	statusRepo adapter.StatusHistoryRepository,
) *ListExpendituresUseCase {
	return &ListExpendituresUseCase{
		profileRepo:     profileRepo,
		expenditureRepo: expenditureRepo,
		statusRepo:      statusRepo,
	}
}

// Execute lists a profile's expenditures with optional category, search and
// month-status filters.
func (uc *ListExpendituresUseCase) Execute(ctx context.Context, input ListExpendituresInput) (*ListExpendituresOutput, error) {
	page := input.Page
	if page == 0 {
		page = 1
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if page < 1 || limit < 1 {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeInvalidPagination,
			"invalid pagination parameters",
			domainerror.ErrInvalidPagination,
		)
	}

	var statusMonth valueobject.Month
	if input.Month != "" {
		parsed, err := valueobject.ParseMonth(input.Month)
		if err != nil {
			return nil, domainerror.NewExpenditureError(
				domainerror.ErrCodeInvalidMonthFormat,
				"month must be in YYYY-MM format",
				domainerror.ErrInvalidMonthFormat,
			)
		}
		statusMonth = parsed
	}

	exists, err := uc.profileRepo.ExistsByID(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to check profile existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewExpenditureError(
			domainerror.ErrCodeProfileNotFound,
			"profile not found",
			domainerror.ErrProfileNotFound,
		)
	}

	all, err := uc.expenditureRepo.FindByProfile(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenditures: %w", err)
	}

	filtered := make([]*entity.ExpenditureWithCategory, 0, len(all))
	for _, exp := range all {
		if input.CategoryID != nil && exp.Expenditure.CategoryID != *input.CategoryID {
			continue
		}
		if input.Search != "" && !matchesSearch(exp.Expenditure, input.Search) {
			continue
		}
		if input.Month != "" {
			keep, err := uc.matchesStatus(ctx, exp.Expenditure.ID, statusMonth, input.Paused)
			if err != nil {
				return nil, err
			}
			if !keep {
				continue
			}
		}
		filtered = append(filtered, exp)
	}

	totalCount := len(filtered)
	totalPages := (totalCount + limit - 1) / limit

	start := (page - 1) * limit
	if start > totalCount {
		start = totalCount
	}
	end := start + limit
	if end > totalCount {
		end = totalCount
	}

	return &ListExpendituresOutput{
		Expenditures: filtered[start:end],
		Pagination: Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  totalCount,
			Limit:       limit,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	}, nil
}

func matchesSearch(exp *entity.Expenditure, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(exp.ItemName), needle) ||
		strings.Contains(strings.ToLower(exp.Memo), needle)
}

func (uc *ListExpendituresUseCase) matchesStatus(ctx context.Context, expenditureID uuid.UUID, month valueobject.Month, paused bool) (bool, error) {
	entry, err := uc.statusRepo.FindEffective(ctx, expenditureID, month.Time())
	if err != nil {
		return false, fmt.Errorf("failed to resolve status for expenditure %s: %w", expenditureID, err)
	}
	if entry == nil {
		return false, nil
	}
	if paused {
		return entry.Status == entity.StatusPaused, nil
	}
	return entry.Status == entity.StatusActive, nil
}
