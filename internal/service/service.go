package service

import (
	"context"

	"github.com/GlebRadaev/ipr/internal/config"
	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/handlers/admin"
	"github.com/GlebRadaev/ipr/internal/handlers/auth"
	"github.com/GlebRadaev/ipr/internal/handlers/groups"
	"github.com/GlebRadaev/ipr/internal/handlers/messages"
	"github.com/GlebRadaev/ipr/internal/handlers/profile"
	"github.com/GlebRadaev/ipr/internal/handlers/site"
	"github.com/GlebRadaev/ipr/internal/handlers/verification"
	"github.com/GlebRadaev/ipr/internal/handlers/wallet"
	"github.com/GlebRadaev/ipr/internal/reconciler"
	"github.com/GlebRadaev/ipr/internal/repo"
	pkgauth "github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/GlebRadaev/ipr/pkg/ratelimit"

	approvalservice "github.com/GlebRadaev/ipr/internal/service/approvalservice"
	authservice "github.com/GlebRadaev/ipr/internal/service/authservice"
	groupservice "github.com/GlebRadaev/ipr/internal/service/groupservice"
	holdingservice "github.com/GlebRadaev/ipr/internal/service/holdingservice"
	messageservice "github.com/GlebRadaev/ipr/internal/service/messageservice"
	profileservice "github.com/GlebRadaev/ipr/internal/service/profileservice"
	siteservice "github.com/GlebRadaev/ipr/internal/service/siteservice"
	verificationservice "github.com/GlebRadaev/ipr/internal/service/verificationservice"
	walletservice "github.com/GlebRadaev/ipr/internal/service/walletservice"
)

// GroupService is the group lifecycle as seen by members, admins and the reconciler.
type GroupService interface {
	groups.Service
	admin.GroupService
	reconciler.Groups
}

type HoldingService interface {
	groups.HoldingService
	admin.HoldingService
}

type VerificationService interface {
	verification.Service
	Purge(ctx context.Context) (int64, error)
}

type Publisher interface {
	Publish(event domain.ChangeEvent)
}

type Services struct {
	AuthService         auth.Service
	ProfileService      profile.Service
	GroupService        GroupService
	ApprovalService     admin.ApprovalService
	HoldingService      HoldingService
	WalletService       wallet.Service
	MessageService      messages.Service
	SiteService         site.Service
	VerificationService VerificationService

	Tokens pkgauth.TokenValidator
}

func New(repo *repo.Repositories, cfg *config.Config, publisher Publisher, mailer verificationservice.Mailer) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	hashService := pkgauth.NewHashService(0)

	messageService := messageservice.New(repo.MessageRepo, publisher)
	groupService := groupservice.New(repo.GroupRepo, repo.RequestRepo, repo.ProfileRepo, repo.TX, publisher)

	return &Services{
		AuthService: authservice.New(
			repo.UserRepo, repo.ProfileRepo, repo.WalletRepo, repo.TX,
			hashService, jwtService, cfg.TokenTTL, cfg.AdminEmails,
		),
		ProfileService:  profileservice.New(repo.ProfileRepo, publisher),
		GroupService:    groupService,
		ApprovalService: approvalservice.New(repo.RequestRepo, groupService, messageService, repo.TX, publisher),
		HoldingService:  holdingservice.New(repo.RequestRepo, repo.GroupRepo, repo.ProfileRepo, repo.UserRepo),
		WalletService:   walletservice.New(repo.WalletRepo, repo.Withdrawal, messageService, repo.TX, publisher),
		MessageService:  messageService,
		SiteService:     siteservice.New(repo.SiteRepo, publisher),
		VerificationService: verificationservice.New(
			repo.VerificationRepo, mailer, ratelimit.PerMinute(cfg.VerifyRatePerMinute),
		),
		Tokens: jwtService,
	}
}
