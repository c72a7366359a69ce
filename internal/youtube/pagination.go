package youtube

const (
	// pageSize is the provider's fixed page size for upload listings.
	pageSize = 50

	// hardEntryCap bounds the raw entries examined per walk, pre-filter.
	// It applies even to "import everything" requests: a resource
	// ceiling, not a feature limit.
	hardEntryCap = 500
)

// listingPage is one page of an upload listing plus its continuation token.
// An empty token means the end of the collection.
type listingPage struct {
	entries   []PlaylistEntry
	nextToken string
}

// collectUploads walks a paginated upload listing through fetch, applying the
// date cutoff and bounds from opts. The walk stops when the provider returns
// no continuation token, when the accumulated output reaches opts.MaxVideos,
// or when hardEntryCap raw entries have been examined.
func collectUploads(fetch func(pageToken string) (listingPage, error), opts ListOptions) ([]PlaylistEntry, error) {
	var accumulated []PlaylistEntry
	examined := 0
	token := ""

	for {
		page, err := fetch(token)
		if err != nil {
			return nil, err
		}

		for _, entry := range page.entries {
			examined++
			if opts.PublishedAfter != nil && entry.PublishedAt.Before(*opts.PublishedAfter) {
				continue
			}
			accumulated = append(accumulated, entry)
		}

		if opts.MaxVideos > 0 && len(accumulated) >= opts.MaxVideos {
			accumulated = accumulated[:opts.MaxVideos]
			break
		}
		if page.nextToken == "" || examined >= hardEntryCap {
			break
		}
		token = page.nextToken
	}

	return accumulated, nil
}
