// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package catalog

// MediaType is the catalog's item kind as it appears in URL paths and in
// the media_type field of listings.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Valid reports whether t can be used in a catalog path.
func (t MediaType) Valid() bool {
	return t == MediaMovie || t == MediaTV
}

// Genre is one entry of a details response genre list.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Provider is a streaming service offering an item.
type Provider struct {
	ProviderID   int    `json:"provider_id"`
	ProviderName string `json:"provider_name"`
}

// RegionProviders groups providers for one country by offer kind.
type RegionProviders struct {
	Link     string     `json:"link"`
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
}

// WatchProviders is the appended watch/providers block, keyed by country code.
type WatchProviders struct {
	Results map[string]RegionProviders `json:"results"`
}

// Details is the subset of a movie or tv details response WatchNext reads.
type Details struct {
	ID             int            `json:"id"`
	Title          string         `json:"title"`
	Name           string         `json:"name"`
	Overview       string         `json:"overview"`
	VoteAverage    float64        `json:"vote_average"`
	Genres         []Genre        `json:"genres"`
	WatchProviders WatchProviders `json:"watch/providers"`
}

// GenreIDs returns the ids of d.Genres in response order.
func (d *Details) GenreIDs() []int {
	ids := make([]int, 0, len(d.Genres))
	for _, g := range d.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// FlatrateProviders returns the subscription provider names offered in
// region, in response order. Unknown regions yield nil.
func (d *Details) FlatrateProviders(region string) []string {
	rp, ok := d.WatchProviders.Results[region]
	if !ok || len(rp.Flatrate) == 0 {
		return nil
	}
	names := make([]string, 0, len(rp.Flatrate))
	for _, p := range rp.Flatrate {
		names = append(names, p.ProviderName)
	}
	return names
}

// Summary is one row of a listing: trending, search or recommendations.
// Movies carry Title and ReleaseDate, shows carry Name and FirstAirDate.
type Summary struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	MediaType    string  `json:"media_type"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	GenreIDs     []int   `json:"genre_ids"`
}

// DisplayTitle prefers the movie title and falls back to the show name.
func (s *Summary) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Name
}

// Type returns the listing's media type, defaulting to movie.
func (s *Summary) Type() MediaType {
	if s.MediaType == "" {
		return MediaMovie
	}
	return MediaType(s.MediaType)
}

// HasPoster reports whether the listing carries artwork.
func (s *Summary) HasPoster() bool {
	return s.PosterPath != ""
}

// Year returns the first four characters of the release date, else of the
// first air date, else fallback.
func (s *Summary) Year(fallback string) string {
	date := s.ReleaseDate
	if date == "" {
		date = s.FirstAirDate
	}
	if date == "" {
		date = fallback
	}
	if len(date) > 4 {
		return date[:4]
	}
	return date
}

// page is the envelope of every paginated listing endpoint.
type page struct {
	Page         int       `json:"page"`
	Results      []Summary `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}
