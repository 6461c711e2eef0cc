package dtos

// EstimateRequest is the serve-mode request body. It mirrors the CLI run
// config file: source city codes, destination city codes and the
// business-class duration threshold in minutes.
type EstimateRequest struct {
	Src         []string `json:"src" validate:"required,min=1,dive,required"`
	Dst         []string `json:"dst" validate:"required,min=1,dive,required"`
	BCThreshold int      `json:"bcThreshold" validate:"gte=0"`
}
