package harvesting

// State é a etapa corrente de uma coleta
type State int

const (
	StatePending State = iota
	StateFetchingProfile
	StateFetchingVideoList
	StateFetchingVideoDetails
	StateAggregating
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFetchingProfile:
		return "fetching_profile"
	case StateFetchingVideoList:
		return "fetching_video_list"
	case StateFetchingVideoDetails:
		return "fetching_video_details"
	case StateAggregating:
		return "aggregating"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal indica que a coleta terminou, com ou sem sucesso
func (s State) Terminal() bool {
	return s == StateComplete || s == StateFailed
}

// Step identifica o passo da coleta nos logs e nos erros
type Step string

const (
	StepOpenChannel         Step = "open_channel"
	StepDismissConsent      Step = "dismiss_consent"
	StepExtractProfile      Step = "extract_profile"
	StepEnumerateVideos     Step = "enumerate_videos"
	StepExtractVideoDetails Step = "extract_video_details"
	StepBuildSnapshot       Step = "build_snapshot"
	StepFinalize            Step = "finalize"
)

// StateObserver é notificado a cada transição de estado de uma coleta
type StateObserver func(channelID string, from, to State)
