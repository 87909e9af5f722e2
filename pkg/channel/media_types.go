package channel

// Media is opaque to the core (§3): callers supply it to Load without the
// core interpreting more than what is needed to build the LOAD request.
type Media struct {
	Title       string
	Artist      string
	Album       string
	URL         string
	Cover       *Image
	ContentType string
}

// Image is optional cover art metadata.
type Image struct {
	URL    string
	Width  int
	Height int
}

// musicTrackMetadataType is the Cast "metadataType" value for a music track.
const musicTrackMetadataType = 3

// mediaMetadata is the JSON-facing "metadata" object of a MediaInformation.
type mediaMetadata struct {
	MetadataType int            `json:"metadataType"`
	Title        string         `json:"title,omitempty"`
	Artist       string         `json:"artist,omitempty"`
	AlbumName    string         `json:"albumName,omitempty"`
	Images       []mediaCoverJSON `json:"images,omitempty"`
}

type mediaCoverJSON struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// mediaInformation is the JSON-facing "media" field of a LOAD request.
// streamType is always "NONE": the device decides its own buffering policy
// (§4.2).
type mediaInformation struct {
	ContentID   string        `json:"contentId"`
	ContentType string        `json:"contentType"`
	StreamType  string        `json:"streamType"`
	Metadata    mediaMetadata `json:"metadata"`
}

func toMediaInformation(m Media) mediaInformation {
	meta := mediaMetadata{
		MetadataType: musicTrackMetadataType,
		Title:        m.Title,
		Artist:       m.Artist,
		AlbumName:    m.Album,
	}
	if m.Cover != nil {
		meta.Images = []mediaCoverJSON{{URL: m.Cover.URL, Width: m.Cover.Width, Height: m.Cover.Height}}
	}
	return mediaInformation{
		ContentID:   m.URL,
		ContentType: m.ContentType,
		StreamType:  "NONE",
		Metadata:    meta,
	}
}
