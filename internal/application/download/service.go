package download

import (
	"context"
	"fmt"

	"repoaccess/internal/domain/access"
	"repoaccess/internal/domain/capability"
	"repoaccess/internal/domain/permission"
	"repoaccess/internal/shared/errors"
	"repoaccess/internal/shared/logger"
	"repoaccess/internal/shared/utils/logutil"
	"repoaccess/internal/shared/utils/setutil"
)

// Service decides who may receive and use tokenized download links for
// items under review.
type Service struct {
	tokens        *capability.Service
	directory     permission.ManagerDirectory
	promoterField string
	logger        logger.Interface
}

func NewService(
	tokens *capability.Service,
	directory permission.ManagerDirectory,
	promoterField string,
	logger logger.Interface,
) *Service {
	return &Service{
		tokens:        tokens,
		directory:     directory,
		promoterField: promoterField,
		logger:        logger,
	}
}

// AuthorizedEmails returns the promoters recorded on the item followed by
// the managers of its owning collection, without duplicates.
func (s *Service) AuthorizedEmails(ctx context.Context, item *access.Item) ([]string, error) {
	if item == nil {
		return nil, nil
	}

	emails := item.MetadataValues(s.promoterField)

	if item.CollectionID() != "" {
		managers, err := s.directory.ManagersOf(ctx, item.CollectionID())
		if err != nil {
			s.logger.Errorw("failed to get collection managers",
				"error", err,
				"item_id", item.ID(),
				"collection_id", item.CollectionID())
			return nil, fmt.Errorf("failed to get managers of collection %s: %w", item.CollectionID(), err)
		}
		emails = append(emails, managers...)
	}

	return setutil.Distinct(emails), nil
}

// VerifyDownload reports whether token grants access to the bitstream.
// Only files of items in the review workflow can be unlocked by a token.
func (s *Service) VerifyDownload(ctx context.Context, bitstream *access.Bitstream, token string) (bool, error) {
	if bitstream == nil {
		return false, nil
	}

	item := bitstream.Item()
	if item == nil {
		s.logger.Warnw("download token presented for a detached bitstream", "bitstream_id", bitstream.ID())
		return false, nil
	}

	emails, err := s.AuthorizedEmails(ctx, item)
	if err != nil {
		return false, err
	}

	if !s.tokens.Verify(token, emails, item.Stage().InReview()) {
		s.logger.Warnw("download token rejected",
			"bitstream_id", bitstream.ID(),
			"item_id", item.ID(),
			"stage", item.Stage().String(),
			"token", logutil.TokenPrefix(token, 8))
		return false, nil
	}

	s.logger.Debugw("download token accepted", "bitstream_id", bitstream.ID(), "item_id", item.ID())
	return true, nil
}

// CanIssueURL reports whether email may request download links for the
// item: the item must be under review and the requester an administrator
// or a manager of its collection.
func (s *Service) CanIssueURL(ctx context.Context, email string, item *access.Item) (bool, error) {
	if item == nil || email == "" || !item.Stage().InReview() {
		return false, nil
	}

	admin, err := s.directory.IsAdmin(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check administrator: %w", err)
	}
	if admin {
		return true, nil
	}

	manager, err := s.directory.IsManager(ctx, email, item.CollectionID())
	if err != nil {
		return false, fmt.Errorf("failed to check collection manager: %w", err)
	}
	return manager, nil
}

// IssueURLs builds the requester's links for every file of the bundle.
func (s *Service) IssueURLs(ctx context.Context, requester string, bundle *access.Bundle) ([]capability.DownloadURL, error) {
	if bundle == nil {
		return nil, errors.NewNotFoundError("bundle not found")
	}

	allowed, err := s.CanIssueURL(ctx, requester, bundle.Item())
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.logger.Warnw("download links refused", "requester", logutil.MaskEmail(requester), "bundle", bundle.Name())
		return nil, errors.NewForbiddenError("not allowed to issue download links", requester)
	}

	urls := s.tokens.BuildURLs(bundle, requester)
	s.logger.Infow("download links issued",
		"requester", logutil.MaskEmail(requester),
		"item_id", bundle.Item().ID(),
		"bundle", bundle.Name(),
		"count", len(urls))
	return urls, nil
}
