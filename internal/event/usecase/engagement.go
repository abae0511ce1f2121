package usecase

import (
	"image-insights-srv/internal/event"
	"image-insights-srv/internal/model"
)

const maxInteractionWeight = 4

// engagementScore blends the four documented factors into a [0,100] score.
// Each factor lands in [0,1] and the weights sum to 100.
func (uc *implUseCase) engagementScore(input event.RecordInput) float64 {
	score := uc.durationFactor(input.DurationMs)*float64(uc.cfg.WeightDuration) +
		uc.positionFactor(input.Position)*float64(uc.cfg.WeightPosition) +
		uc.interactionFactor(input)*float64(uc.cfg.WeightInteraction) +
		uc.deviceFactor(input.DeviceType)*float64(uc.cfg.WeightDevice)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// durationFactor is ratio-scaled against the reference dwell time and
// capped at 1.
func (uc *implUseCase) durationFactor(durationMs int64) float64 {
	if durationMs <= 0 || uc.cfg.ReferenceDurationMs <= 0 {
		return 0
	}
	f := float64(durationMs) / float64(uc.cfg.ReferenceDurationMs)
	if f > 1 {
		return 1
	}
	return f
}

func (uc *implUseCase) positionFactor(position string) float64 {
	if f, ok := uc.cfg.PositionFactors[position]; ok {
		return f
	}
	return uc.cfg.PositionFactors[event.PositionBelowFold]
}

// interactionFactor normalizes the interaction-kind weight table. Events
// without an explicit kind fall back to a per-event-type default.
func (uc *implUseCase) interactionFactor(input event.RecordInput) float64 {
	kind := input.InteractionKind
	if kind == "" {
		switch input.EventType {
		case model.EventTypeDownload:
			kind = event.InteractionDownload
		case model.EventTypeInteraction:
			kind = event.InteractionClick
		default:
			kind = event.InteractionHover
		}
	}

	return uc.cfg.InteractionWeights[kind] / maxInteractionWeight
}

func (uc *implUseCase) deviceFactor(deviceType string) float64 {
	if f, ok := uc.cfg.DeviceFactors[deviceType]; ok {
		return f
	}
	return uc.cfg.DeviceFactors[model.DeviceDesktop]
}
