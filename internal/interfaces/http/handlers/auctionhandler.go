package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gavel/internal/application/auction/usecases"
	"gavel/internal/domain/auction"
	"gavel/internal/domain/user"
	"gavel/internal/interfaces/http/middleware"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/logger"
	"gavel/internal/shared/utils"
)

type AuctionHandler struct {
	createUseCase   *usecases.CreateAuctionUseCase
	listUseCase     *usecases.ListAuctionsUseCase
	getUseCase      *usecases.GetAuctionUseCase
	placeBidUseCase *usecases.PlaceBidUseCase
	withdrawUseCase *usecases.WithdrawAuctionUseCase
	userRepo        user.Repository
	logger          logger.Interface
}

func NewAuctionHandler(
	createUC *usecases.CreateAuctionUseCase,
	listUC *usecases.ListAuctionsUseCase,
	getUC *usecases.GetAuctionUseCase,
	placeBidUC *usecases.PlaceBidUseCase,
	withdrawUC *usecases.WithdrawAuctionUseCase,
	userRepo user.Repository,
	logger logger.Interface,
) *AuctionHandler {
	return &AuctionHandler{
		createUseCase:   createUC,
		listUseCase:     listUC,
		getUseCase:      getUC,
		placeBidUseCase: placeBidUC,
		withdrawUseCase: withdrawUC,
		userRepo:        userRepo,
		logger:          logger,
	}
}

type CreateAuctionRequest struct {
	Title         string    `json:"title" binding:"required,min=3,max=200"`
	Description   string    `json:"description" binding:"required"`
	StartingPrice float64   `json:"starting_price" binding:"required,gt=0"`
	EndsAt        time.Time `json:"ends_at" binding:"required"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// currentUser resolves the authenticated identity to a full user record.
func (h *AuctionHandler) currentUser(c *gin.Context) (*user.User, bool) {
	sid, ok := middleware.GetUserSID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return nil, false
	}

	u, err := h.userRepo.GetBySID(c.Request.Context(), sid)
	if err != nil {
		h.logger.Errorw("failed to load current user", "error", err, "user_sid", sid)
		utils.ErrorResponseWithError(c, errors.NewInternalError("internal server error"))
		return nil, false
	}
	if u == nil {
		utils.ErrorResponseWithError(c, errors.NewUserNotFoundError())
		return nil, false
	}

	return u, true
}

// Create opens a new listing owned by the authenticated user.
func (h *AuctionHandler) Create(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "all fields are required")
		return
	}

	cmd := usecases.CreateAuctionCommand{
		SellerID:      u.ID(),
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		EndsAt:        req.EndsAt,
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "auction created successfully", auctionToResponse(created))
}

// List returns a filtered page of listings. Public.
func (h *AuctionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := usecases.ListAuctionsQuery{
		Status:   auction.Status(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	auctions, total, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, 0, len(auctions))
	for _, a := range auctions {
		items = append(items, auctionToResponse(a))
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}

// Get returns one listing with its bid history. Public.
func (h *AuctionHandler) Get(c *gin.Context) {
	sid := c.Param("sid")

	detail, err := h.getUseCase.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	bids := make([]gin.H, 0, len(detail.Bids))
	for _, b := range detail.Bids {
		bids = append(bids, gin.H{
			"sid":       b.SID(),
			"amount":    b.Amount(),
			"placed_at": b.PlacedAt(),
		})
	}

	resp := auctionToResponse(detail.Auction)
	resp["bids"] = bids

	utils.SuccessResponse(c, http.StatusOK, "auction retrieved successfully", resp)
}

// PlaceBid records a bid on a listing by the authenticated user.
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "bid amount is required")
		return
	}

	cmd := usecases.PlaceBidCommand{
		AuctionSID: c.Param("sid"),
		BidderID:   u.ID(),
		Amount:     req.Amount,
	}

	bid, err := h.placeBidUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "bid placed successfully", gin.H{
		"sid":       bid.SID(),
		"amount":    bid.Amount(),
		"placed_at": bid.PlacedAt(),
	})
}

// Withdraw removes a bid-free listing. Seller or admin only.
func (h *AuctionHandler) Withdraw(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	cmd := usecases.WithdrawAuctionCommand{
		AuctionSID:  c.Param("sid"),
		RequesterID: u.ID(),
		IsAdmin:     u.IsAdmin(),
	}

	if err := h.withdrawUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "auction withdrawn successfully", nil)
}

func auctionToResponse(a *auction.Auction) gin.H {
	return gin.H{
		"sid":            a.SID(),
		"title":          a.Title(),
		"description":    a.Description(),
		"starting_price": a.StartingPrice(),
		"current_price":  a.CurrentPrice(),
		"bid_count":      a.BidCount(),
		"status":         string(a.Status()),
		"ends_at":        a.EndsAt(),
		"created_at":     a.CreatedAt(),
	}
}
