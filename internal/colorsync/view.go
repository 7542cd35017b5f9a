package colorsync

// Anchor is the optional zoom/lightbox wrapper around the base image.
type Anchor struct {
	Href       string
	LargeImage string
}

// ImageView is the displayed garment base image. Srcset is cleared on
// every swap so the browser honors the plain source attribute.
type ImageView struct {
	Src    string
	Srcset string
	Anchor *Anchor
}

// SetSource overwrites the displayed image and any wrapper attributes.
func (v *ImageView) SetSource(url string) {
	v.Src = url
	v.Srcset = ""
	if v.Anchor != nil {
		v.Anchor.Href = url
		v.Anchor.LargeImage = url
	}
}
