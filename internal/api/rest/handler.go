package rest

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-dice-registry/internal/api/middleware"
	"github.com/feral-file/ff-dice-registry/internal/api/shared/dto"
	"github.com/feral-file/ff-dice-registry/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetContracts returns the deployed contract addresses
	// GET /api/v1/contracts
	GetContracts(c *gin.Context)

	// Mint creates a dice owned by the caller
	// POST /api/v1/dice
	Mint(c *gin.Context)
	// GetDice retrieves a dice by id
	// GET /api/v1/dice/:id
	GetDice(c *gin.Context)
	// Transfer moves a dice owned by the caller
	// POST /api/v1/dice/:id/transfer
	Transfer(c *gin.Context)
	// GetDiceByOwner retrieves the dice owned by an address
	// GET /api/v1/owners/:address/dice?limit=<limit>&offset=<offset>
	GetDiceByOwner(c *gin.Context)

	// GetBalance retrieves the native balance of an address
	// GET /api/v1/balances/:address
	GetBalance(c *gin.Context)
	// Fund credits an address (requires API key authentication)
	// POST /api/v1/balances/fund
	Fund(c *gin.Context)

	// SetBattlePair records the opponent of the caller
	// PUT /api/v1/battle/pair
	SetBattlePair(c *gin.Context)
	// GetBattlePair retrieves the opponent an account registered
	// GET /api/v1/battle/pairs/:address
	GetBattlePair(c *gin.Context)
	// GetArbiterDeposits retrieves the dice an account deposited for battle
	// GET /api/v1/battle/deposits/:address
	GetArbiterDeposits(c *gin.Context)
	// Battle resolves a battle started by the caller
	// POST /api/v1/battle
	Battle(c *gin.Context)
	// WithdrawFromArbiter returns a deposited dice to the caller
	// POST /api/v1/battle/dice/:id/withdraw
	WithdrawFromArbiter(c *gin.Context)

	// GetListings retrieves active listings
	// GET /api/v1/market/listings?seller=<address>&limit=<limit>&offset=<offset>
	GetListings(c *gin.Context)
	// GetListing retrieves the listing of a dice
	// GET /api/v1/market/listings/:id
	GetListing(c *gin.Context)
	// List offers a deposited dice
	// POST /api/v1/market/listings/:id
	List(c *gin.Context)
	// Unlist withdraws a listing
	// DELETE /api/v1/market/listings/:id
	Unlist(c *gin.Context)
	// Buy purchases a listed dice
	// POST /api/v1/market/listings/:id/buy
	Buy(c *gin.Context)
	// GetMinimumPrice retrieves the lowest accepted listing price of a dice
	// GET /api/v1/market/dice/:id/minimum-price
	GetMinimumPrice(c *gin.Context)
	// WithdrawFromMarket returns an unlisted dice to the caller
	// POST /api/v1/market/dice/:id/withdraw
	WithdrawFromMarket(c *gin.Context)

	// GetEvents retrieves the event journal in order
	// GET /api/v1/events?after=<seq>&limit=<limit>
	GetEvents(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// caller returns the authenticated caller, responding 401 when missing
func caller(c *gin.Context) (common.Address, bool) {
	address, ok := middleware.GetCaller(c)
	if !ok {
		respondUnauthorized(c, "Caller is required")
	}
	return address, ok
}

func (h *handler) GetContracts(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetContracts(c.Request.Context()))
}

func (h *handler) Mint(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.Mint(c.Request.Context(), from, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *handler) GetDice(c *gin.Context) {
	resp, err := h.executor.GetDice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) Transfer(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.Transfer(c.Request.Context(), from, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetDiceByOwner(c *gin.Context) {
	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.GetDiceByOwner(c.Request.Context(), c.Param("address"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetBalance(c *gin.Context) {
	resp, err := h.executor.GetBalance(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) Fund(c *gin.Context) {
	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.Fund(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) SetBattlePair(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	var req dto.BattlePairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.SetBattlePair(c.Request.Context(), from, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetBattlePair(c *gin.Context) {
	resp, err := h.executor.GetBattlePair(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetArbiterDeposits(c *gin.Context) {
	resp, err := h.executor.GetArbiterDeposits(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) Battle(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	var req dto.BattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.Battle(c.Request.Context(), from, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) WithdrawFromArbiter(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	resp, err := h.executor.WithdrawFromArbiter(c.Request.Context(), from, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetListings(c *gin.Context) {
	params, err := ParseListListingsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var seller *string
	if params.Seller != "" {
		seller = &params.Seller
	}

	resp, err := h.executor.GetListings(c.Request.Context(), seller, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetListing(c *gin.Context) {
	resp, err := h.executor.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		respondNotFound(c, "Listing not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) List(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.List(c.Request.Context(), from, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) Unlist(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	resp, err := h.executor.Unlist(c.Request.Context(), from, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) Buy(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.Buy(c.Request.Context(), from, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetMinimumPrice(c *gin.Context) {
	resp, err := h.executor.GetMinimumPrice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) WithdrawFromMarket(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}

	resp, err := h.executor.WithdrawFromMarket(c.Request.Context(), from, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetEvents(c *gin.Context) {
	params, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.GetEvents(c.Request.Context(), params.After, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
