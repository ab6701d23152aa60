package transport

import (
	"net/http"
	"sync"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ashitosh07/monad-explorer/internal/search"
	"github.com/gorilla/mux"
)

type portfolio struct {
	Tokens   model.CategoryResult `json:"tokens"`
	NFTs     model.CategoryResult `json:"nfts"`
	Activity model.CategoryResult `json:"activity"`
}

type addressResponse struct {
	Profile   *model.AddressProfile `json:"profile"`
	Portfolio portfolio             `json:"portfolio"`
}

func (h *Handler) block(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, mux.Vars(r)["height"], model.QueryBlock, "Block not found")
}

func (h *Handler) transaction(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, mux.Vars(r)["hash"], model.QueryTransaction, "Transaction not found")
}

// lookup dispatches a query that must classify as want and writes its payload.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request, query string, want model.QueryType, notFound string) {
	if search.Classify(query) != want {
		writeError(w, http.StatusBadRequest, "Invalid "+string(want))
		return
	}
	result := h.searcher.Dispatch(r.Context(), query)
	if !h.writeFailure(w, result, notFound) {
		writeJSON(w, http.StatusOK, result.Data())
	}
}

func (h *Handler) address(w http.ResponseWriter, r *http.Request) {
	query := mux.Vars(r)["address"]
	if search.Classify(query) != model.QueryAddress {
		writeError(w, http.StatusBadRequest, "Invalid address")
		return
	}

	var (
		result  model.QueryResult
		results map[model.Category]model.CategoryResult
		wg      sync.WaitGroup
	)
	wg.Go(func() {
		result = h.searcher.Dispatch(r.Context(), query)
	})
	wg.Go(func() {
		results = h.resolver.ResolveAll(r.Context(), model.AccountCategories, model.Params{model.ParamAddress: query})
	})
	wg.Wait()

	if h.writeFailure(w, result, "Address not found") {
		return
	}
	writeJSON(w, http.StatusOK, addressResponse{
		Profile: result.Address,
		Portfolio: portfolio{
			Tokens:   accountResult(results, model.CategoryAccountTokens),
			NFTs:     accountResult(results, model.CategoryAccountNFTs),
			Activity: accountResult(results, model.CategoryAccountActivity),
		},
	})
}

func accountResult(results map[model.Category]model.CategoryResult, c model.Category) model.CategoryResult {
	if r, ok := results[c]; ok && r.Data != nil {
		return r
	}
	return model.CategoryResult{Category: c, Status: model.StatusError, Data: model.Empty(c)}
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	result := h.searcher.Dispatch(r.Context(), mux.Vars(r)["query"])
	switch result.Status {
	case model.QueryFound:
		writeJSON(w, http.StatusOK, result)
	case model.QueryUnavailable:
		writeJSON(w, http.StatusServiceUnavailable, result)
	default:
		writeJSON(w, http.StatusNotFound, result)
	}
}

// writeFailure answers any non-found result and reports whether it did.
func (h *Handler) writeFailure(w http.ResponseWriter, result model.QueryResult, notFound string) bool {
	switch result.Status {
	case model.QueryFound:
		return false
	case model.QueryNotFound:
		writeError(w, http.StatusNotFound, notFound)
	case model.QueryInvalid:
		writeError(w, http.StatusBadRequest, "Invalid query")
	default:
		writeError(w, http.StatusServiceUnavailable, "Ledger unavailable")
	}
	return true
}
