package assets

type FetchAssetsQuery struct {
	Kind string `form:"kind" binding:"omitempty"`
}
