package dto

import (
	"github.com/allisson/idsmith/internal/creditcard"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/lei"
)

// ResultResponse represents a generated or parsed identifier. Decomposed fields are
// omitted when the format does not expose them.
type ResultResponse struct {
	CountryCode   string `json:"country_code"`
	CountryName   string `json:"country_name"`
	FormatName    string `json:"format_name"`
	Raw           string `json:"raw"`
	Formatted     string `json:"formatted"`
	BankCode      string `json:"bank_code,omitempty"`
	BranchCode    string `json:"branch_code,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	CheckDigits   string `json:"check_digits,omitempty"`
	IBAN          string `json:"iban,omitempty"`
	Gender        string `json:"gender,omitempty"`
	DOB           string `json:"dob,omitempty"`
	HolderType    string `json:"holder_type,omitempty"`
	Region        string `json:"region,omitempty"`
	Valid         bool   `json:"valid"`
}

// MapResultToResponse converts a domain result to an API response.
func MapResultToResponse(r domain.Result) ResultResponse {
	return ResultResponse{
		CountryCode:   r.CountryCode,
		CountryName:   r.CountryName,
		FormatName:    r.FormatName,
		Raw:           r.Raw,
		Formatted:     r.Formatted,
		BankCode:      r.BankCode,
		BranchCode:    r.BranchCode,
		AccountNumber: r.AccountNumber,
		CheckDigits:   r.CheckDigits,
		IBAN:          r.IBAN,
		Gender:        r.Gender.String(),
		DOB:           r.DOB,
		HolderType:    r.HolderType,
		Region:        r.Region,
		Valid:         r.Valid,
	}
}

// ListResponse wraps every generate and listing response.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func mapAll[S, T any](items []S, f func(S) T) ListResponse[T] {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, f(item))
	}
	return ListResponse[T]{Items: out, Total: len(out)}
}

// MapResultsToResponse converts a batch of results.
func MapResultsToResponse(results []domain.Result) ListResponse[ResultResponse] {
	return mapAll(results, MapResultToResponse)
}

// ValidateResponse is returned by every validate endpoint.
type ValidateResponse struct {
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted,omitempty"`
}

// CountryResponse describes one supported country of a registry-backed kind.
type CountryResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	FormatName string `json:"format_name"`
	HasIBAN    bool   `json:"has_iban"`
	Tier       string `json:"tier"`
	ParentCode string `json:"parent_code,omitempty"`
}

// MapCountriesToResponse converts a registry listing. total is the size of the listing
// before pagination.
func MapCountriesToResponse(infos []domain.CountryInfo, total int) ListResponse[CountryResponse] {
	resp := mapAll(infos, func(info domain.CountryInfo) CountryResponse {
		return CountryResponse{
			Code:       info.Code,
			Name:       info.Name,
			FormatName: info.FormatName,
			HasIBAN:    info.HasIBAN,
			Tier:       string(info.Tier),
			ParentCode: info.ParentCode,
		}
	})
	resp.Total = total
	return resp
}

// IBANResponse represents a generated or inspected IBAN.
type IBANResponse struct {
	CountryCode string `json:"country_code,omitempty"`
	CountryName string `json:"country_name,omitempty"`
	IBAN        string `json:"iban"`
	Formatted   string `json:"formatted"`
	CheckDigits string `json:"check_digits,omitempty"`
	BBAN        string `json:"bban,omitempty"`
	Valid       bool   `json:"valid"`
}

// MapIBANToResponse converts a domain IBAN.
func MapIBANToResponse(i domain.IBAN) IBANResponse {
	return IBANResponse{
		CountryCode: i.CountryCode,
		CountryName: i.CountryName,
		IBAN:        i.IBAN,
		Formatted:   i.Formatted,
		CheckDigits: i.CheckDigits,
		BBAN:        i.BBAN,
		Valid:       i.Valid,
	}
}

// MapIBANsToResponse converts a batch of IBANs.
func MapIBANsToResponse(ibans []domain.IBAN) ListResponse[IBANResponse] {
	return mapAll(ibans, MapIBANToResponse)
}

// IBANCountryResponse describes one IBAN country.
type IBANCountryResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	BBANLength int    `json:"bban_length"`
	Layout     string `json:"layout"`
}

// MapIBANCountriesToResponse converts the IBAN country listing.
func MapIBANCountriesToResponse(countries []domain.IBANCountry, total int) ListResponse[IBANCountryResponse] {
	resp := mapAll(countries, func(c domain.IBANCountry) IBANCountryResponse {
		return IBANCountryResponse{Code: c.Code, Name: c.Name, BBANLength: c.BBANLength, Layout: c.Layout}
	})
	resp.Total = total
	return resp
}

// CardResponse represents a payment card. CVV and expiry are only set on generation.
type CardResponse struct {
	Brand     string `json:"brand,omitempty"`
	Number    string `json:"number"`
	Formatted string `json:"formatted"`
	CVV       string `json:"cvv,omitempty"`
	Expiry    string `json:"expiry,omitempty"`
	Valid     bool   `json:"valid"`
}

// MapCardToResponse converts a card.
func MapCardToResponse(card creditcard.Card) CardResponse {
	return CardResponse{
		Brand:     card.Brand.DisplayName(),
		Number:    card.Number,
		Formatted: card.Formatted,
		CVV:       card.CVV,
		Expiry:    card.Expiry,
		Valid:     card.Valid,
	}
}

// MapCardsToResponse converts a batch of cards.
func MapCardsToResponse(cards []creditcard.Card) ListResponse[CardResponse] {
	return mapAll(cards, MapCardToResponse)
}

// LEIResponse represents a Legal Entity Identifier.
type LEIResponse struct {
	Code        string `json:"code"`
	LOU         string `json:"lou,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	CheckDigits string `json:"check_digits,omitempty"`
	Valid       bool   `json:"valid"`
}

// MapLEIToResponse converts an LEI.
func MapLEIToResponse(l lei.LEI) LEIResponse {
	return LEIResponse{
		Code:        l.Code,
		LOU:         l.LOU,
		CountryCode: l.CountryCode,
		CheckDigits: l.CheckDigits,
		Valid:       l.Valid,
	}
}

// MapLEIsToResponse converts a batch of LEIs.
func MapLEIsToResponse(leis []lei.LEI) ListResponse[LEIResponse] {
	return mapAll(leis, MapLEIToResponse)
}
