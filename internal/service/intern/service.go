package intern

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevex/hiring-backend-go/internal/domain/audit"
	"github.com/sandevex/hiring-backend-go/internal/domain/candidate"
	"github.com/sandevex/hiring-backend-go/internal/domain/intern"
	"github.com/sandevex/hiring-backend-go/internal/domain/offer"
	"github.com/sandevex/hiring-backend-go/internal/domain/preference"
	"github.com/sandevex/hiring-backend-go/internal/pkg/database"
	"github.com/sandevex/hiring-backend-go/internal/repository/postgresql"
)

type InternServiceImpl struct {
	internRepo     intern.InternRepository
	profileRepo    intern.ProfileRepository
	candidateRepo  candidate.CandidateRepository
	offerRepo      offer.OfferRepository
	preferenceRepo preference.PreferenceRepository
	auditService   audit.AuditService

	// runTx wraps the conversion's double insert in a transaction
	runTx func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewInternService(
	db *database.DB,
	internRepo intern.InternRepository,
	profileRepo intern.ProfileRepository,
	candidateRepo candidate.CandidateRepository,
	offerRepo offer.OfferRepository,
	preferenceRepo preference.PreferenceRepository,
	auditService audit.AuditService,
) intern.InternService {
	return &InternServiceImpl{
		internRepo:     internRepo,
		profileRepo:    profileRepo,
		candidateRepo:  candidateRepo,
		offerRepo:      offerRepo,
		preferenceRepo: preferenceRepo,
		auditService:   auditService,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// mapOfferStatus translates the offer state machine into the profile-side
// mirror. A still-pending offer means the intern was converted before
// responding, the profile starts from not_sent.
func mapOfferStatus(s offer.Status) intern.OfferStatus {
	switch s {
	case offer.StatusAccepted:
		return intern.OfferAccepted
	case offer.StatusDeclined:
		return intern.OfferDeclined
	case offer.StatusExpired:
		return intern.OfferExpired
	default:
		return intern.OfferNotSent
	}
}

// Convert implements intern.InternService.
func (s *InternServiceImpl) Convert(ctx context.Context, req intern.ConvertRequest) (intern.InternWithProfile, error) {
	cand, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	o, err := s.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	if !strings.EqualFold(cand.Email, o.Email) {
		return intern.InternWithProfile{}, intern.ErrEmailMismatch
	}
	if o.Mobile != nil && cand.Mobile != "" && cand.Mobile != *o.Mobile {
		return intern.InternWithProfile{}, intern.ErrPhoneMismatch
	}

	// The preference is matched by the candidate's email, the id in the
	// request only identifies the row the admin clicked.
	pref, err := s.preferenceRepo.GetByEmail(ctx, cand.Email)
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	if _, err := s.internRepo.GetByEmail(ctx, cand.Email); err == nil {
		return intern.InternWithProfile{}, intern.ErrAlreadyConverted
	} else if !errors.Is(err, intern.ErrInternNotFound) {
		return intern.InternWithProfile{}, err
	}

	now := time.Now()

	newIntern := intern.Intern{
		FullName:    intern.NormalizeName(cand.FullName),
		Email:       cand.Email,
		Mobile:      cand.Mobile,
		CollegeName: cand.CollegeName,
		Degree:      cand.Degree,
		Branch:      cand.Branch,
		YearOfStudy: cand.YearOfStudy,
		CityState:   cand.CityState,
		Address:     cand.Address,
	}

	newProfile := intern.Profile{
		PreferredDomain:   pref.Domain,
		SkillLevel:        pref.SkillLevel,
		TechnicalSkills:   cand.TechnicalSkills,
		PriorExperience:   cand.PriorExperience,
		PortfolioURL:      pref.PortfolioURL,
		OfferStatus:       mapOfferStatus(o.Status),
		InternshipStatus:  intern.InternshipActive,
		OfferLetterIssued: o.PhysicalLetterCollected,
		JoinedAt:          &now,
		Notes:             fmt.Sprintf("Converted from candidate record on %s", now.Format("2006-01-02")),
	}
	if o.PhysicalLetterCollected {
		newProfile.OfferLetterIssuedAt = &now
	}

	var createdIntern intern.Intern
	var createdProfile intern.Profile

	err = s.runTx(ctx, func(txCtx context.Context) error {
		var err error
		createdIntern, err = s.internRepo.Create(txCtx, newIntern)
		if err != nil {
			return err
		}

		newProfile.InternID = createdIntern.ID
		createdProfile, err = s.profileRepo.Create(txCtx, newProfile)
		return err
	})
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	s.auditService.Record(ctx, audit.Log{
		EntityType:  audit.EntityIntern,
		EntityID:    createdIntern.ID,
		Action:      audit.ActionCreate,
		Description: fmt.Sprintf("Created intern %s from candidate record", createdIntern.FullName),
	})
	s.auditService.Record(ctx, audit.Log{
		EntityType:  audit.EntityInternProfile,
		EntityID:    createdProfile.ID,
		Action:      audit.ActionCreate,
		Description: fmt.Sprintf("Created intern profile for %s", createdIntern.FullName),
	})

	return intern.InternWithProfile{Intern: createdIntern, Profile: createdProfile}, nil
}

// Update implements intern.InternService.
func (s *InternServiceImpl) Update(ctx context.Context, id string, req intern.UpdateRequest) (intern.InternWithProfile, error) {
	existing, err := s.internRepo.GetByID(ctx, id)
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	profile, err := s.profileRepo.GetByInternID(ctx, id)
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	oldInternFields := existing.AuditFields()
	oldProfileFields := profile.AuditFields()

	applyInternPatch(&existing, req)
	applyProfilePatch(&profile, req)

	updatedIntern, err := s.internRepo.Update(ctx, existing)
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	updatedProfile, err := s.profileRepo.Update(ctx, profile)
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	if changes := audit.DetectChanges(oldInternFields, updatedIntern.AuditFields()); len(changes) > 0 {
		s.auditService.Record(ctx, audit.Log{
			EntityType:  audit.EntityIntern,
			EntityID:    updatedIntern.ID,
			Action:      audit.ActionUpdate,
			Changes:     changes,
			Description: audit.DescribeChanges(changes, "intern "+updatedIntern.FullName),
		})
	}
	if changes := audit.DetectChanges(oldProfileFields, updatedProfile.AuditFields()); len(changes) > 0 {
		s.auditService.Record(ctx, audit.Log{
			EntityType:  audit.EntityInternProfile,
			EntityID:    updatedProfile.ID,
			Action:      audit.ActionUpdate,
			Changes:     changes,
			Description: audit.DescribeChanges(changes, "profile of "+updatedIntern.FullName),
		})
	}

	return intern.InternWithProfile{Intern: updatedIntern, Profile: updatedProfile}, nil
}

func applyInternPatch(i *intern.Intern, req intern.UpdateRequest) {
	if req.FullName != nil {
		i.FullName = intern.NormalizeName(*req.FullName)
	}
	if req.Email != nil {
		i.Email = *req.Email
	}
	if req.Mobile != nil {
		i.Mobile = *req.Mobile
	}
	if req.CollegeName != nil {
		i.CollegeName = *req.CollegeName
	}
	if req.Degree != nil {
		i.Degree = *req.Degree
	}
	if req.Branch != nil {
		i.Branch = *req.Branch
	}
	if req.YearOfStudy != nil {
		i.YearOfStudy = *req.YearOfStudy
	}
	if req.CityState != nil {
		i.CityState = *req.CityState
	}
	if req.Address != nil {
		i.Address = *req.Address
	}
}

func applyProfilePatch(p *intern.Profile, req intern.UpdateRequest) {
	now := time.Now()

	if req.PreferredDomain != nil {
		p.PreferredDomain = *req.PreferredDomain
	}
	if req.SkillLevel != nil {
		p.SkillLevel = *req.SkillLevel
	}
	if req.TechnicalSkills != nil {
		p.TechnicalSkills = *req.TechnicalSkills
	}
	if req.PriorExperience != nil {
		p.PriorExperience = *req.PriorExperience
	}
	if req.PortfolioURL != nil {
		p.PortfolioURL = *req.PortfolioURL
	}
	if req.OfferStatus != nil {
		p.OfferStatus = intern.OfferStatus(*req.OfferStatus)
	}
	if req.InternshipStatus != nil {
		next := intern.InternshipStatus(*req.InternshipStatus)
		if next == intern.InternshipCompleted && p.InternshipStatus != intern.InternshipCompleted {
			p.CompletedAt = &now
		}
		p.InternshipStatus = next
	}
	if req.InternshipFeePaid != nil {
		if *req.InternshipFeePaid && !p.InternshipFeePaid {
			p.FeePaidAt = &now
		}
		p.InternshipFeePaid = *req.InternshipFeePaid
	}
	if req.OfferLetterIssued != nil {
		if *req.OfferLetterIssued && !p.OfferLetterIssued {
			p.OfferLetterIssuedAt = &now
		}
		p.OfferLetterIssued = *req.OfferLetterIssued
	}
	if req.CertificateIssued != nil {
		if *req.CertificateIssued && !p.CertificateIssued {
			p.CertificateIssuedAt = &now
		}
		p.CertificateIssued = *req.CertificateIssued
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
}

// Get implements intern.InternService.
func (s *InternServiceImpl) Get(ctx context.Context, id string) (intern.InternWithProfile, error) {
	i, err := s.internRepo.GetByID(ctx, id)
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	p, err := s.profileRepo.GetByInternID(ctx, id)
	if err != nil {
		return intern.InternWithProfile{}, err
	}

	return intern.InternWithProfile{Intern: i, Profile: p}, nil
}

// List implements intern.InternService.
func (s *InternServiceImpl) List(ctx context.Context) ([]intern.InternWithProfile, error) {
	return s.internRepo.ListWithProfiles(ctx)
}
