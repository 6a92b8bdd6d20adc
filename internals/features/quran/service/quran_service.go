package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrUpstream = errors.New("UpstreamFailure")

const baseURL = "https://api.alquran.cloud/v1"

// one shared client, the upstream gets 5 seconds and no more
var httpClient = &http.Client{Timeout: 5 * time.Second}

// Surah payload as alquran.cloud returns it; we pass the data object
// through untouched.
type surahEnvelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// FetchSurah proxies one surah (1..114) in the given edition. An empty
// edition falls back to the canonical Arabic text.
func FetchSurah(number int, edition string) (json.RawMessage, error) {
	if number < 1 || number > 114 {
		return nil, fmt.Errorf("surah number out of range: %d", number)
	}
	if edition == "" {
		edition = "quran-uthmani"
	}

	url := fmt.Sprintf("%s/surah/%d/%s", baseURL, number, edition)
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned %d", ErrUpstream, resp.StatusCode)
	}

	var envelope surahEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if envelope.Code != http.StatusOK || len(envelope.Data) == 0 {
		return nil, fmt.Errorf("%w: upstream code %d", ErrUpstream, envelope.Code)
	}

	return envelope.Data, nil
}
