// Package accounts - Account service
package accounts

import (
	"fmt"

	"capability-dispatch/domains/notify"
	"capability-dispatch/internal/errors"
)

// Service registers users: persist, send the welcome message, and keep
// reporting available. Every collaborator is injected as a contract.
type Service struct {
	repo    Repository
	welcome notify.Sender
	reports ReportWriter
}

// NewService creates an account service from its collaborators
func NewService(repo Repository, welcome notify.Sender, reports ReportWriter) (*Service, error) {
	if repo == nil {
		return nil, errors.Input("account service requires a repository")
	}
	if welcome == nil {
		return nil, errors.Input("account service requires a welcome sender")
	}
	if reports == nil {
		return nil, errors.Input("account service requires a report writer")
	}
	return &Service{
		repo:    repo,
		welcome: welcome,
		reports: reports,
	}, nil
}

// SignUp persists the user and sends the welcome message
func (s *Service) SignUp(user User) error {
	if err := s.repo.Save(user); err != nil {
		return err
	}
	return s.welcome.Send(fmt.Sprintf("welcome %s <%s>", user.Name, user.Email))
}

// Report renders the report for the user stored under an email address
func (s *Service) Report(email string) (string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return "", err
	}
	return s.reports.Render(user), nil
}
