package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dice-registry/internal/adapter"
	"github.com/feral-file/ff-dice-registry/internal/api/middleware"
	"github.com/feral-file/ff-dice-registry/internal/api/server"
	"github.com/feral-file/ff-dice-registry/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-dice-registry/internal/api/shared/errors"
	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/host"
	"github.com/feral-file/ff-dice-registry/internal/registry"
	"github.com/feral-file/ff-dice-registry/internal/store"
)

const testAPIKey = "test-api-key"

var (
	deployer = common.HexToAddress("0x0000000000000000000000000000000000000d01")
	alice    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob      = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

type testServer struct {
	router   *gin.Engine
	registry registry.Registry
}

func setupTestServer(t *testing.T) *testServer {
	ctx := context.Background()
	st := store.NewMemoryStore()
	h := host.New(st, adapter.NewClock())
	for _, account := range []common.Address{alice, bob} {
		require.NoError(t, h.Fund(ctx, account, uint256.NewInt(10*domain.WEI_PER_ETHER)))
	}

	r, err := registry.Deploy(h, st, registry.Config{
		Deployer:     deployer,
		MinMintPrice: uint256.NewInt(domain.WEI_PER_ETHER),
		Commission:   1,
	})
	require.NoError(t, err)

	srv := server.New(server.Config{
		Auth: middleware.AuthConfig{
			APIKeys:           []string{testAPIKey},
			AllowCallerHeader: true,
		},
	}, r)

	return &testServer{router: srv.Router(), registry: r}
}

// do sends a request as caller (zero address sends none) and decodes the response into out
func (ts *testServer) do(t *testing.T, method, path string, caller common.Address, body interface{}, out interface{}) int {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if caller != (common.Address{}) {
		req.Header.Set(middleware.CALLER_HEADER, caller.Hex())
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func (ts *testServer) mint(t *testing.T, caller common.Address, power, kind uint8) string {
	var resp dto.MintResponse
	code := ts.do(t, http.MethodPost, "/api/v1/dice", caller, dto.MintRequest{Power: power, Kind: kind, Value: "1 ether"}, &resp)
	require.Equal(t, http.StatusCreated, code)
	return resp.DiceID
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	var body map[string]string
	code := ts.do(t, http.MethodGet, "/health", common.Address{}, nil, &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestGetContracts(t *testing.T) {
	ts := setupTestServer(t)

	var resp dto.ContractsResponse
	code := ts.do(t, http.MethodGet, "/api/v1/contracts", common.Address{}, nil, &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, ts.registry.Contracts().Ledger.Hex(), resp.Ledger)
	assert.Equal(t, "1000000000000000000", resp.MinMintPrice)
	assert.Equal(t, "1000000000000000", resp.PriceUnit)
	assert.Equal(t, deployer.Hex(), resp.Operator)
}

func TestMintAndGetDice(t *testing.T) {
	ts := setupTestServer(t)

	id := ts.mint(t, alice, 6, 1)
	assert.Equal(t, "0", id)

	var dice dto.DiceResponse
	code := ts.do(t, http.MethodGet, "/api/v1/dice/0", common.Address{}, nil, &dice)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, alice.Hex(), dice.Owner)
	assert.Equal(t, uint8(1), dice.Strength)
	assert.Equal(t, "1000000000000000000", dice.CreationValue)
	assert.Nil(t, dice.Custodian)

	var list dto.DiceListResponse
	code = ts.do(t, http.MethodGet, "/api/v1/owners/"+alice.Hex()+"/dice", common.Address{}, nil, &list)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, uint64(1), list.Total)
}

func TestMintErrors(t *testing.T) {
	ts := setupTestServer(t)

	var apiErr apierrors.APIError
	code := ts.do(t, http.MethodPost, "/api/v1/dice", common.Address{}, dto.MintRequest{Power: 6, Kind: 1, Value: "1 ether"}, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, apierrors.ErrCodeUnauthorized, apiErr.Code)

	code = ts.do(t, http.MethodPost, "/api/v1/dice", alice, dto.MintRequest{Power: 6, Kind: 1, Value: "0.5 ether"}, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, apierrors.ErrorCode("insufficient_payment"), apiErr.Code)

	code = ts.do(t, http.MethodPost, "/api/v1/dice", alice, dto.MintRequest{Power: 6, Kind: 1, Value: "lots"}, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)

	code = ts.do(t, http.MethodGet, "/api/v1/dice/42", common.Address{}, nil, &apiErr)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, apierrors.ErrorCode("unknown_asset"), apiErr.Code)

	code = ts.do(t, http.MethodGet, "/api/v1/dice/abc", common.Address{}, nil, &apiErr)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestTransferNotOwner(t *testing.T) {
	ts := setupTestServer(t)
	id := ts.mint(t, alice, 6, 1)

	var apiErr apierrors.APIError
	code := ts.do(t, http.MethodPost, "/api/v1/dice/"+id+"/transfer", bob, dto.TransferRequest{To: bob.Hex()}, &apiErr)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, apierrors.ErrorCode("not_owner"), apiErr.Code)

	var receipt dto.ReceiptResponse
	code = ts.do(t, http.MethodPost, "/api/v1/dice/"+id+"/transfer", alice, dto.TransferRequest{To: bob.Hex()}, &receipt)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, domain.EventTypeDiceTransferred, receipt.Events[0].Type)
}

func TestFundRequiresAPIKey(t *testing.T) {
	ts := setupTestServer(t)
	carol := common.HexToAddress("0x3333333333333333333333333333333333333333")
	body, err := json.Marshal(dto.FundRequest{Address: carol.Hex(), Amount: "2 ether"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/balances/fund", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/balances/fund", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	w = httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var balance dto.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, "2000000000000000000", balance.Balance)
}

func TestMarketFlow(t *testing.T) {
	ts := setupTestServer(t)
	market := ts.registry.Contracts().Market.Hex()
	id := ts.mint(t, alice, 6, 1)

	code := ts.do(t, http.MethodPost, "/api/v1/dice/"+id+"/transfer", alice, dto.TransferRequest{To: market}, nil)
	require.Equal(t, http.StatusOK, code)

	var minimum dto.MinimumPriceResponse
	code = ts.do(t, http.MethodGet, "/api/v1/market/dice/"+id+"/minimum-price", common.Address{}, nil, &minimum)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, uint64(1001), minimum.Price)

	var apiErr apierrors.APIError
	code = ts.do(t, http.MethodPost, "/api/v1/market/listings/"+id, alice, dto.ListRequest{Price: 1000}, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, apierrors.ErrorCode("price_too_low"), apiErr.Code)

	code = ts.do(t, http.MethodPost, "/api/v1/market/listings/"+id, bob, dto.ListRequest{Price: 1001}, &apiErr)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, apierrors.ErrorCode("not_custodian"), apiErr.Code)

	code = ts.do(t, http.MethodPost, "/api/v1/market/listings/"+id, alice, dto.ListRequest{Price: 1001}, nil)
	require.Equal(t, http.StatusOK, code)

	var listing dto.ListingResponse
	code = ts.do(t, http.MethodGet, "/api/v1/market/listings/"+id, common.Address{}, nil, &listing)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, alice.Hex(), listing.Seller)
	assert.Equal(t, "1001000000000000000", listing.PriceWei)

	var listings dto.ListingListResponse
	code = ts.do(t, http.MethodGet, "/api/v1/market/listings?seller="+alice.Hex(), common.Address{}, nil, &listings)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, uint64(1), listings.Total)

	code = ts.do(t, http.MethodPost, "/api/v1/market/listings/"+id+"/buy", bob, dto.BuyRequest{Payment: "1 ether"}, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, apierrors.ErrorCode("payment_too_low"), apiErr.Code)

	code = ts.do(t, http.MethodPost, "/api/v1/market/listings/"+id+"/buy", bob, dto.BuyRequest{Payment: "1001 finney"}, nil)
	require.Equal(t, http.StatusOK, code)

	code = ts.do(t, http.MethodGet, "/api/v1/market/listings/"+id, common.Address{}, nil, &apiErr)
	assert.Equal(t, http.StatusNotFound, code)

	var dice dto.DiceResponse
	code = ts.do(t, http.MethodGet, "/api/v1/dice/"+id, common.Address{}, nil, &dice)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, bob.Hex(), dice.Owner)

	var balance dto.BalanceResponse
	code = ts.do(t, http.MethodGet, "/api/v1/balances/"+deployer.Hex(), common.Address{}, nil, &balance)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "1000000000000000", balance.Balance)
}

func TestBattleFlow(t *testing.T) {
	ts := setupTestServer(t)
	arbiter := ts.registry.Contracts().Arbiter.Hex()
	aliceDice := ts.mint(t, alice, 6, 1)
	bobDice := ts.mint(t, bob, 30, 1)

	for caller, id := range map[common.Address]string{alice: aliceDice, bob: bobDice} {
		code := ts.do(t, http.MethodPost, "/api/v1/dice/"+id+"/transfer", caller, dto.TransferRequest{To: arbiter}, nil)
		require.Equal(t, http.StatusOK, code)
	}

	var apiErr apierrors.APIError
	code := ts.do(t, http.MethodPost, "/api/v1/battle", bob, dto.BattleRequest{DiceID: bobDice, OpponentDiceID: aliceDice}, &apiErr)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, apierrors.ErrorCode("not_paired"), apiErr.Code)

	code = ts.do(t, http.MethodPut, "/api/v1/battle/pair", alice, dto.BattlePairRequest{Opponent: bob.Hex()}, nil)
	require.Equal(t, http.StatusOK, code)
	code = ts.do(t, http.MethodPut, "/api/v1/battle/pair", bob, dto.BattlePairRequest{Opponent: alice.Hex()}, nil)
	require.Equal(t, http.StatusOK, code)

	var pair dto.BattlePairResponse
	code = ts.do(t, http.MethodGet, "/api/v1/battle/pairs/"+alice.Hex(), common.Address{}, nil, &pair)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, pair.Opponent)
	assert.Equal(t, bob.Hex(), *pair.Opponent)

	var deposits dto.DepositsResponse
	code = ts.do(t, http.MethodGet, "/api/v1/battle/deposits/"+alice.Hex(), common.Address{}, nil, &deposits)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{aliceDice}, deposits.DiceIDs)

	var result dto.BattleResponse
	code = ts.do(t, http.MethodPost, "/api/v1/battle", bob, dto.BattleRequest{DiceID: bobDice, OpponentDiceID: aliceDice}, &result)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.BattleOutcomeWin, result.Result.Outcome)
	require.NotNil(t, result.Result.Winner)
	assert.Equal(t, bob, *result.Result.Winner)

	code = ts.do(t, http.MethodPost, "/api/v1/battle/dice/"+bobDice+"/withdraw", bob, nil, nil)
	require.Equal(t, http.StatusOK, code)

	var events dto.EventListResponse
	code = ts.do(t, http.MethodGet, "/api/v1/events?limit=100", common.Address{}, nil, &events)
	require.Equal(t, http.StatusOK, code)
	types := make([]domain.EventType, 0, len(events.Events))
	for _, e := range events.Events {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, domain.EventTypeBattleWon)
	assert.Contains(t, types, domain.EventTypeDiceWithdrawn)
	assert.Equal(t, events.Events[len(events.Events)-1].Seq, events.Next)

	var page dto.EventListResponse
	code = ts.do(t, http.MethodGet, "/api/v1/events?after=2&limit=1", common.Address{}, nil, &page)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, page.Events, 1)
	assert.Equal(t, uint64(3), page.Events[0].Seq)
}
