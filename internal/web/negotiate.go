package web

import (
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/render"
)

// acceptedContentType is render.GetAcceptedContentType restricted to the
// types this server produces, honouring q-values: media ranges are tried by
// decreasing quality and q=0 refuses a type.
func acceptedContentType(r *http.Request) render.ContentType {
	type mediaRange struct {
		contentType render.ContentType
		quality     float64
	}

	var ranges []mediaRange
	for _, v := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(v))
		if err != nil {
			continue
		}

		// */* and text/* map to ContentTypeUnknown and never win over an
		// explicit type.
		contentType := render.GetContentType(mediaType)
		if contentType != render.ContentTypeJSON && contentType != render.ContentTypePlainText {
			continue
		}

		quality := 1.0
		if q, ok := params["q"]; ok {
			if quality, err = strconv.ParseFloat(q, 64); err != nil {
				continue
			}
		}
		if quality <= 0 {
			continue
		}

		ranges = append(ranges, mediaRange{contentType, quality})
	}

	if len(ranges) == 0 {
		return render.ContentTypePlainText
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].quality > ranges[j].quality
	})

	return ranges[0].contentType
}
