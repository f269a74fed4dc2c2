package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/ipr/docs"
	"github.com/GlebRadaev/ipr/internal/config"
	adminhandlers "github.com/GlebRadaev/ipr/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/ipr/internal/handlers/auth"
	groupshandlers "github.com/GlebRadaev/ipr/internal/handlers/groups"
	messageshandlers "github.com/GlebRadaev/ipr/internal/handlers/messages"
	profilehandlers "github.com/GlebRadaev/ipr/internal/handlers/profile"
	sitehandlers "github.com/GlebRadaev/ipr/internal/handlers/site"
	verificationhandlers "github.com/GlebRadaev/ipr/internal/handlers/verification"
	wallethandlers "github.com/GlebRadaev/ipr/internal/handlers/wallet"
	"github.com/GlebRadaev/ipr/internal/metrics"
	"github.com/GlebRadaev/ipr/internal/realtime"
	"github.com/GlebRadaev/ipr/internal/service"
	"github.com/GlebRadaev/ipr/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateMember(w http.ResponseWriter, r *http.Request)
}

type GroupsHandler interface {
	ListOpen(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	Holdings(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListGroups(w http.ResponseWriter, r *http.Request)
	GroupMembers(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	MemberHoldings(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetBankDetails(w http.ResponseWriter, r *http.Request)
	SaveBankDetails(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
	ListAllWithdrawals(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	DenyWithdrawal(w http.ResponseWriter, r *http.Request)
}

type MessagesHandler interface {
	Inbox(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
}

type SiteHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type VerificationHandler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

type RealtimeHandler interface {
	Subscribe(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	ProfileHandler      ProfileHandler
	GroupsHandler       GroupsHandler
	AdminHandler        AdminHandler
	WalletHandler       WalletHandler
	MessagesHandler     MessagesHandler
	SiteHandler         SiteHandler
	VerificationHandler VerificationHandler
	RealtimeHandler     RealtimeHandler

	Middleware *auth.Middleware
}

func New(s *service.Services, hub *realtime.Hub, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService, s.ProfileService),
		ProfileHandler:      profilehandlers.New(s.ProfileService),
		GroupsHandler:       groupshandlers.New(s.GroupService, s.ApprovalService, s.HoldingService),
		AdminHandler:        adminhandlers.New(s.GroupService, s.ApprovalService, s.HoldingService),
		WalletHandler:       wallethandlers.New(s.WalletService),
		MessagesHandler:     messageshandlers.New(s.MessageService),
		SiteHandler:         sitehandlers.New(s.SiteService),
		VerificationHandler: verificationhandlers.New(s.VerificationService),
		RealtimeHandler:     realtime.NewHandler(hub, cfg.AllowedOrigins),
		Middleware:          auth.NewMiddleware(s.Tokens, s.AuthService, cfg.ServiceToken),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Get("/api/site-info", h.SiteHandler.Get)
	r.Post("/api/verification", h.VerificationHandler.Handle)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.Middleware.Authenticate)
			r.Get("/session", h.AuthHandler.Session)
			r.Put("/password", h.AuthHandler.ChangePassword)
			r.Get("/profile", h.ProfileHandler.Get)
			r.Put("/profile", h.ProfileHandler.Update)
			r.Get("/requests", h.GroupsHandler.MyRequests)
			r.Get("/holdings", h.GroupsHandler.Holdings)
			r.Get("/wallet", h.WalletHandler.GetWallet)
			r.Get("/bank-details", h.WalletHandler.GetBankDetails)
			r.Put("/bank-details", h.WalletHandler.SaveBankDetails)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WalletHandler.RequestWithdrawal)
				r.Get("/", h.WalletHandler.ListWithdrawals)
			})
			r.Route("/messages", func(r chi.Router) {
				r.Get("/", h.MessagesHandler.Inbox)
				r.Post("/{messageID}/read", h.MessagesHandler.MarkRead)
			})
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(h.Middleware.Authenticate)
		r.Get("/api/groups", h.GroupsHandler.ListOpen)
		r.Post("/api/groups/{groupID}/requests", h.GroupsHandler.Submit)
		r.Get("/api/realtime", h.RealtimeHandler.Subscribe)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.With(h.Middleware.RequireServiceOrAdmin).Post("/reset", h.AdminHandler.Reset)

		r.Group(func(r chi.Router) {
			r.Use(h.Middleware.Authenticate, h.Middleware.RequireAdmin)
			r.Route("/groups", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListGroups)
				r.Get("/{groupID}/members", h.AdminHandler.GroupMembers)
				r.Post("/{groupID}/recompute", h.AdminHandler.Recompute)
				r.Get("/{groupID}/members/{userID}/history", h.AdminHandler.History)
				r.Post("/{groupID}/members/{userID}/paid", h.AdminHandler.MarkPaid)
			})
			r.Route("/requests", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListRequests)
				r.Post("/{requestID}/approve", h.AdminHandler.Approve)
				r.Post("/{requestID}/reject", h.AdminHandler.Reject)
			})
			r.Route("/members", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListMembers)
				r.Get("/{userID}/holdings", h.AdminHandler.MemberHoldings)
				r.Put("/{userID}/profile", h.ProfileHandler.UpdateMember)
				r.Post("/{userID}/messages", h.MessagesHandler.Send)
			})
			r.Post("/wallets/{userID}/credit", h.WalletHandler.Credit)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.WalletHandler.ListAllWithdrawals)
				r.Post("/{id}/approve", h.WalletHandler.ApproveWithdrawal)
				r.Post("/{id}/deny", h.WalletHandler.DenyWithdrawal)
			})
			r.Put("/site-info", h.SiteHandler.Save)
		})
	})

	return r
}
