// Package telemetry records per-wave statistics of a session as CSV.
package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"go-space-invaders/internal/event"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/timer"
)

// WaveRecord is one CSV row, written when a wave is cleared or the game ends.
type WaveRecord struct {
	Wave           int     `csv:"wave"`
	Outcome        string  `csv:"outcome"`
	DurationSec    float64 `csv:"duration_sec"`
	Score          int     `csv:"score"`
	WaveScore      int     `csv:"wave_score"`
	ShipsDestroyed int     `csv:"ships_destroyed"`
	BonusDestroyed int     `csv:"bonus_destroyed"`
	ShotsFired     int     `csv:"shots_fired"`
	EnemyShots     int     `csv:"enemy_shots"`
	LivesLeft      int     `csv:"lives_left"`
}

// Summary aggregates the recorded waves.
type Summary struct {
	Waves           int
	FinalScore      int
	MeanWaveSec     float64
	StdDevWaveSec   float64
	Accuracy        float64
	MeanShipsPerSec float64
}

// Recorder listens to wave events and writes a record for each finished wave.
type Recorder struct {
	out           io.Writer
	dispatcher    *event.Dispatcher
	clock         timer.Clock
	score         *system.ScoreSystem
	headerWritten bool
	records       []WaveRecord
	err           error

	waveStart time.Time
	baseline  system.ScoreSystem
}

// NewRecorder subscribes a recorder. out may be nil to only keep records in
// memory.
func NewRecorder(eventDispatcher *event.Dispatcher, clock timer.Clock, score *system.ScoreSystem, out io.Writer) *Recorder {
	r := &Recorder{
		out:       out,
		clock:     clock,
		score:     score,
		waveStart: clock.Now(),
		baseline:  *score,
	}
	r.dispatcher = eventDispatcher
	eventDispatcher.SubscribeAll(r, recordedEvents...)
	return r
}

var recordedEvents = []event.EventType{event.WaveStarted, event.WaveCleared, event.GameOver}

// Close stops recording. Records and Summary stay available.
func (r *Recorder) Close() {
	for _, t := range recordedEvents {
		r.dispatcher.Unsubscribe(t, r)
	}
}

func (r *Recorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		r.waveStart = r.clock.Now()
		r.baseline = *r.score
	case event.WaveCleared:
		r.record(e.Data.(event.WaveData).Number, "cleared")
	case event.GameOver:
		r.record(e.Data.(event.WaveData).Number, "game_over")
	}
}

func (r *Recorder) record(wave int, outcome string) {
	s := r.score
	rec := WaveRecord{
		Wave:           wave,
		Outcome:        outcome,
		DurationSec:    r.clock.Now().Sub(r.waveStart).Seconds(),
		Score:          s.Score,
		WaveScore:      s.Score - r.baseline.Score,
		ShipsDestroyed: s.ShipsDestroyed - r.baseline.ShipsDestroyed,
		BonusDestroyed: s.BonusDestroyed - r.baseline.BonusDestroyed,
		ShotsFired:     s.ShotsFired - r.baseline.ShotsFired,
		EnemyShots:     s.EnemyShots - r.baseline.EnemyShots,
		LivesLeft:      s.Lives,
	}
	r.records = append(r.records, rec)
	slog.Debug("wave recorded", "wave", wave, "outcome", outcome, "score", rec.Score)

	if err := r.write(rec); err != nil && r.err == nil {
		r.err = err
	}
}

func (r *Recorder) write(rec WaveRecord) error {
	if r.out == nil {
		return nil
	}
	rows := []WaveRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.out); err != nil {
			return fmt.Errorf("writing wave record: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, r.out); err != nil {
		return fmt.Errorf("writing wave record: %w", err)
	}
	return nil
}

// Records returns every row recorded so far.
func (r *Recorder) Records() []WaveRecord {
	return r.records
}

// Err returns the first write error, if any.
func (r *Recorder) Err() error {
	return r.err
}

// Summary computes session statistics over the recorded waves.
func (r *Recorder) Summary() Summary {
	sum := Summary{Waves: len(r.records), FinalScore: r.score.Score, Accuracy: r.score.Accuracy()}
	if len(r.records) == 0 {
		return sum
	}

	durations := make([]float64, len(r.records))
	rates := make([]float64, 0, len(r.records))
	for i, rec := range r.records {
		durations[i] = rec.DurationSec
		if rec.DurationSec > 0 {
			rates = append(rates, float64(rec.ShipsDestroyed)/rec.DurationSec)
		}
	}
	if len(durations) > 1 {
		sum.MeanWaveSec, sum.StdDevWaveSec = stat.MeanStdDev(durations, nil)
	} else {
		sum.MeanWaveSec = durations[0]
	}
	if len(rates) > 0 {
		sum.MeanShipsPerSec = stat.Mean(rates, nil)
	}
	return sum
}
