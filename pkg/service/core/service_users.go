package core

import (
	"context"
	"slices"
	"strings"

	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

var _ service.UserService = &userService{}

type userService struct {
	userDirectoryAPI service.UserDirectoryAPI
	metrics          *Metrics
}

func (s *userService) GetUsers(ctx context.Context, fields []string) ([]service.DirectoryUser, error) {
	const op errs.Op = "userService.GetUsers"

	entries, err := s.userDirectoryAPI.ListUsers(ctx)
	if err != nil {
		s.metrics.Error(LocationUsers)

		return nil, errs.E(op, err)
	}

	selected := selectFields(fields)

	users := []service.DirectoryUser{}

	for _, e := range entries {
		displayName := strings.TrimSpace(e.DisplayName)
		principal := strings.TrimSpace(e.UserPrincipalName)

		if displayName == "" || !eligiblePrincipal(principal) {
			continue
		}

		user := service.DirectoryUser{}

		if selected[service.UserFieldName] {
			name := strings.Replace(displayName, "  ", ", ", 1)
			user.Name = &name
		}

		if selected[service.UserFieldEmail] {
			email := strings.ToLower(e.Mail)
			user.Email = &email
		}

		if selected[service.UserFieldEmailShort] {
			user.EmailShort = &principal
		}

		users = append(users, user)
	}

	return users, nil
}

// eligiblePrincipal keeps personal accounts, which have a three letter
// initial before the @, and consultant accounts.
func eligiblePrincipal(principal string) bool {
	p := []rune(principal)
	if len(p) <= 4 {
		return false
	}

	return p[3] == '@' || strings.HasPrefix(principal, "kons")
}

// selectFields intersects the requested fields with the known ones, an empty
// intersection selects all of them.
func selectFields(fields []string) map[string]bool {
	selected := map[string]bool{}

	for _, f := range fields {
		f = strings.TrimSpace(f)
		if slices.Contains(service.AllUserFields, f) {
			selected[f] = true
		}
	}

	if len(selected) == 0 {
		for _, f := range service.AllUserFields {
			selected[f] = true
		}
	}

	return selected
}

func NewUserService(userDirectoryAPI service.UserDirectoryAPI, metrics *Metrics) *userService {
	return &userService{
		userDirectoryAPI: userDirectoryAPI,
		metrics:          metrics,
	}
}
