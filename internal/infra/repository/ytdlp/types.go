package ytdlp

// Info is the subset of yt-dlp's --dump-single-json output the service reads.
// Optional scalars are pointers so a missing field can be told apart from a
// zero value.
type Info struct {
	ID            string   `json:"id"`
	Title         *string  `json:"title"`
	Uploader      *string  `json:"uploader"`
	Channel       *string  `json:"channel"`
	Duration      *float64 `json:"duration"`
	Thumbnail     *string  `json:"thumbnail"`
	URL           string   `json:"url"`
	Formats       []Format `json:"formats"`
	Entries       []Entry  `json:"entries"`
	RelatedVideos []Entry  `json:"related_videos"`
}

type Format struct {
	FormatID string `json:"format_id"`
	Ext      string `json:"ext"`
	URL      string `json:"url"`
}

// Entry is a flat playlist, search or related-video item.
type Entry struct {
	ID       string  `json:"id"`
	Title    *string `json:"title"`
	Uploader *string `json:"uploader"`
	Channel  *string `json:"channel"`
}

// StreamURL returns the resolved URL, falling back to the first format that
// has one.
func (i *Info) StreamURL() string {
	if i.URL != "" {
		return i.URL
	}
	for _, f := range i.Formats {
		if f.URL != "" {
			return f.URL
		}
	}

	return ""
}

func (e Entry) TitleOrEmpty() string {
	if e.Title == nil {
		return ""
	}

	return *e.Title
}

// Artist prefers the uploader and falls back to the channel name.
func (e Entry) Artist() string {
	switch {
	case e.Uploader != nil:
		return *e.Uploader
	case e.Channel != nil:
		return *e.Channel
	}

	return ""
}
