package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "algoviz_frames_published_total",
		Help: "Pixel frames published to the display",
	})

	publishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "algoviz_publish_errors_total",
		Help: "Pixel frames that failed to publish",
	})

	controlMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoviz_control_messages_total",
		Help: "Playback control messages received, by type",
	}, []string{"type"})
)
