package models

// Banner and Footer are fixed payloads; they have no table.
type Banner struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Img      string `json:"img"`
}

type Footer struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

const (
	BANNER_TITLE    = "铸软件基石 擎装备重器"
	BANNER_SUBTITLE = "致力于成为xxxxxxxxxx"
	BANNER_IMAGE    = "banner.jpg"
	FOOTER_MESSAGE  = "成功"
)

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{&Module{}, &Partner{}, &Client{}, &Case{}}
}
