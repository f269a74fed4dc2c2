package repo

import (
	"github.com/GlebRadaev/ipr/internal/pg"
	grouprepo "github.com/GlebRadaev/ipr/internal/repo/group-repo"
	messagerepo "github.com/GlebRadaev/ipr/internal/repo/message-repo"
	profilerepo "github.com/GlebRadaev/ipr/internal/repo/profile-repo"
	requestrepo "github.com/GlebRadaev/ipr/internal/repo/request-repo"
	siterepo "github.com/GlebRadaev/ipr/internal/repo/site-repo"
	userrepo "github.com/GlebRadaev/ipr/internal/repo/user-repo"
	verificationrepo "github.com/GlebRadaev/ipr/internal/repo/verification-repo"
	walletrepo "github.com/GlebRadaev/ipr/internal/repo/wallet-repo"
	withdrawalrepo "github.com/GlebRadaev/ipr/internal/repo/withdrawal-repo"
)

// Repositories holds one repository per table family. Each is shared by several
// services, so the fields keep their concrete types.
type Repositories struct {
	UserRepo         *userrepo.Repository
	ProfileRepo      *profilerepo.Repository
	GroupRepo        *grouprepo.Repository
	RequestRepo      *requestrepo.Repository
	MessageRepo      *messagerepo.Repository
	SiteRepo         *siterepo.Repository
	VerificationRepo *verificationrepo.Repository
	WalletRepo       *walletrepo.Repository
	Withdrawal       *withdrawalrepo.Repository

	TX pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		ProfileRepo:      profilerepo.New(conn),
		GroupRepo:        grouprepo.New(conn),
		RequestRepo:      requestrepo.New(conn),
		MessageRepo:      messagerepo.New(conn),
		SiteRepo:         siterepo.New(conn),
		VerificationRepo: verificationrepo.New(conn),
		WalletRepo:       walletrepo.New(conn),
		Withdrawal:       withdrawalrepo.New(conn),
		TX:               txManager,
	}
}
