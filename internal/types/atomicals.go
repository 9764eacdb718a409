package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	errMissingResponse = errors.New(`envelope has no "response" field`)
	errMissingResult   = errors.New(`envelope has no "result" field`)
)

// RequestParams is the body of every ElectrumX proxy request.
type RequestParams struct {
	Params []any `json:"params"`
}

func NewRequestParams(params ...any) RequestParams {
	if params == nil {
		params = []any{}
	}
	return RequestParams{Params: params}
}

// Response is the single-layer envelope `{"response": ...}`.
type Response[T any] struct {
	Response T `json:"response"`
}

// UnmarshalJSON rejects bodies without a "response" key, or with a null one,
// which is how the proxy reports upstream errors.
func (r *Response[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if isAbsent(raw.Response) {
		return errMissingResponse
	}
	return json.Unmarshal(raw.Response, &r.Response)
}

// ResponseResult is the inner layer `{"global": ..., "result": ...}` used by
// the atomicals methods.
type ResponseResult[T any] struct {
	Global *Global `json:"global,omitempty"`
	Result T       `json:"result"`
}

func (r *ResponseResult[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Global *Global         `json:"global"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if isAbsent(raw.Result) {
		return errMissingResult
	}
	r.Global = raw.Global
	return json.Unmarshal(raw.Result, &r.Result)
}

// isAbsent treats an explicit null like a missing key.
func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

type Global struct {
	AtomicalCount int64  `json:"atomical_count"`
	Coin          string `json:"coin"`
	Height        int64  `json:"height"`
	Network       string `json:"network"`
	ServerVersion string `json:"server_version"`
}

type TickerCandidate struct {
	TxNum                int64  `json:"tx_num"`
	AtomicalID           string `json:"atomical_id"`
	Txid                 string `json:"txid"`
	CommitHeight         int64  `json:"commit_height"`
	RevealLocationHeight int64  `json:"reveal_location_height"`
}

// Ticker is the realm of a ticker name. The upstream document is kept in Raw
// so callers that need fields not modelled here still get them.
type Ticker struct {
	Status              string            `json:"status"`
	CandidateAtomicalID string            `json:"candidate_atomical_id,omitempty"`
	AtomicalID          string            `json:"atomical_id,omitempty"`
	Candidates          []TickerCandidate `json:"candidates,omitempty"`
	Type                string            `json:"type"`

	Raw json.RawMessage `json:"-"`
}

func (t *Ticker) UnmarshalJSON(b []byte) error {
	type plain Ticker
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*t = Ticker(p)
	t.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (t Ticker) MarshalJSON() ([]byte, error) {
	if len(t.Raw) > 0 {
		return t.Raw, nil
	}
	type plain Ticker
	return json.Marshal(plain(t))
}

type DftInfo struct {
	MintCount      int64  `json:"mint_count"`
	MintBitworkVec string `json:"mint_bitwork_vec,omitempty"`
}

type MintInfo struct {
	CommitTxid   string `json:"commit_txid"`
	CommitIndex  uint32 `json:"commit_index"`
	CommitHeight int64  `json:"commit_height"`
	RevealHeight int64  `json:"reveal_location_height"`
}

// Ft is the fungible token metadata returned by get_ft_info.
type Ft struct {
	Type           string    `json:"type"`
	Subtype        string    `json:"subtype"`
	AtomicalID     string    `json:"atomical_id"`
	AtomicalNumber int64     `json:"atomical_number"`
	AtomicalRef    string    `json:"atomical_ref"`
	Ticker         string    `json:"$ticker"`
	MaxSupply      int64     `json:"$max_supply"`
	MintAmount     int64     `json:"$mint_amount"`
	MintHeight     int64     `json:"$mint_height"`
	MaxMints       int64     `json:"$max_mints"`
	MintBitworkc   string    `json:"$mint_bitworkc,omitempty"`
	MintBitworkr   string    `json:"$mint_bitworkr,omitempty"`
	MintMode       string    `json:"$mint_mode,omitempty"`
	DftInfo        *DftInfo  `json:"dft_info,omitempty"`
	MintInfo       *MintInfo `json:"mint_info,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (f *Ft) UnmarshalJSON(b []byte) error {
	type plain Ft
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*f = Ft(p)
	f.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (f Ft) MarshalJSON() ([]byte, error) {
	if len(f.Raw) > 0 {
		return f.Raw, nil
	}
	type plain Ft
	return json.Marshal(plain(f))
}

// MintedOut reports whether a decentralized FT has reached its mint cap.
func (f *Ft) MintedOut() bool {
	if f.DftInfo == nil || f.MaxMints <= 0 {
		return false
	}
	return f.DftInfo.MintCount >= f.MaxMints
}
