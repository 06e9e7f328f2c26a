package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/matt-g-everett/algoviz/algo"
	"github.com/matt-g-everett/algoviz/api"
	"github.com/matt-g-everett/algoviz/engine"
	"github.com/matt-g-everett/algoviz/stream"
)

// errPlaybackReset is returned when playback is reset from the control topic
// before it finishes.
var errPlaybackReset = errors.New("playback reset")

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer

	mu       sync.Mutex
	controls stream.Controls
	results  *api.Client
	out      io.Writer
	terminal bool
	verbose  bool
	pending  sync.WaitGroup
}

func newApp(config stream.Config) *app {
	a := new(app)
	a.Config = config
	a.out = os.Stdout
	if config.Api.ResultsURL != "" {
		a.results = api.NewClient(config.Api.ResultsURL)
	}
	a.Streamer = stream.NewStreamer(config, nil)
	return a
}

func (a *app) currentControls() stream.Controls {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.controls
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	controls := a.currentControls()
	if controls == nil {
		return
	}

	listener := stream.NewControlListener(a.Config, client, controls)
	if err := listener.Subscribe(); err != nil {
		log.Printf("Failed to subscribe to %s: %v", a.Config.Mqtt.Topics.Control, err)
	}
}

// connect opens the broker connection, if one is configured, and routes
// control messages to controls.
func (a *app) connect(controls stream.Controls) error {
	a.mu.Lock()
	a.controls = controls
	a.mu.Unlock()
	if a.Config.Headless() {
		return nil
	}

	client := mqtt.NewClient(a.clientOptions())

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to %s: %w", a.Config.Mqtt.URL, token.Error())
	}

	a.Client = client
	a.Streamer = stream.NewStreamer(a.Config, client)
	return nil
}

// clientOptions lets control handlers run concurrently. A handler can wait on
// the engine while the engine waits on a publish acknowledgement.
func (a *app) clientOptions() *mqtt.ClientOptions {
	clientID := a.Config.Mqtt.ClientID
	if clientID == "" {
		clientID = "algoviz-" + uuid.NewString()
	}

	return mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(clientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOrderMatters(false).
		SetOnConnectHandler(a.handleOnConnect)
}

func (a *app) close() {
	a.pending.Wait()
	if a.Client != nil {
		a.Client.Disconnect(250)
	}
}

// logResult submits a finished run in the background. Failures are logged
// and otherwise ignored.
func (a *app) logResult(kind algo.Kind, name string, params any, metrics algo.Metrics) {
	rec, err := algo.NewResult(kind, name, params, metrics)
	if err != nil {
		log.Printf("Failed to build result record: %v", err)
		return
	}
	if a.results == nil {
		if a.verbose {
			log.Printf("Run %s finished: %+v", rec.RunID, rec.Metrics)
		}
		return
	}

	a.pending.Add(1)
	go func() {
		defer a.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		saved, err := a.results.LogResult(ctx, rec)
		if err != nil {
			log.Printf("Failed to log result %s: %v", rec.RunID, err)
			return
		}
		if a.verbose {
			log.Printf("Logged result %d (run %s)", saved.ID, saved.RunID)
		}
	}()
}

// display is what a playback draws into.
type display[F any] interface {
	Apply(frame F, index int)
	View() string
}

// playback animates frames onto b until they have all been shown, the run is
// reset from the control topic, or ctx is done.
func playback[F any](ctx context.Context, a *app, kind algo.Kind, frames []F, b display[F], draw func() *stream.Frame, metrics algo.Metrics) error {
	opts := []engine.Option{}
	if a.verbose {
		opts = append(opts, engine.WithLogger(log.Default()))
	}
	eng := engine.New[F](opts...)
	defer eng.Close()

	if err := a.connect(eng); err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if !a.terminal {
		bar = showProgress(len(frames), "Playing")
	}

	render := func(f F, i int) {
		b.Apply(f, i)
		if err := a.Streamer.SendFrame(draw()); err != nil {
			log.Printf("Failed to publish frame %d: %v", i, err)
		}
		if a.terminal {
			fmt.Fprint(a.out, "\033[H\033[2J")
			fmt.Fprintln(a.out, b.View())
		}
		if bar != nil {
			_ = bar.Set(i + 1)
		}
	}

	done := make(chan struct{})
	var once sync.Once
	eng.Start(frames, render, metrics, a.Config.Playback.Speed, func() {
		once.Do(func() { close(done) })
	})

	watch := time.NewTicker(100 * time.Millisecond)
	defer watch.Stop()
	for {
		select {
		case <-done:
			if bar != nil {
				_ = bar.Finish()
			}
			fmt.Fprintln(a.out, summary(kind, metrics))
			return nil
		case <-ctx.Done():
			eng.Reset()
			return ctx.Err()
		case <-watch.C:
			if eng.Status().State == engine.Idle {
				return errPlaybackReset
			}
		}
	}
}

func showProgress(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func summary(kind algo.Kind, m algo.Metrics) string {
	var rows []string
	add := func(label string, value any) {
		rows = append(rows, labelStyle.Render(fmt.Sprintf("%-16s", label))+valueStyle.Render(fmt.Sprint(value)))
	}

	switch kind {
	case algo.KindPathfinding:
		add("Nodes visited", m.NodesVisited)
		add("Path length", m.PathLength)
	default:
		add("Comparisons", m.Comparisons)
		add("Swaps", m.Swaps)
	}
	add("Time elapsed", fmt.Sprintf("%.3fms", m.TimeElapsed*1000))
	add("Complexity", m.TimeComplexity)

	return boxStyle.Render(strings.Join(rows, "\n"))
}
