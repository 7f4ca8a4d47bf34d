package experiments

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/aclements/go-moremath/stats"
	"github.com/yangl1996/codelab/dhke"
	"go.uber.org/zap"
)

// CostRow is the brute-force cost for one modulus size. Attempt statistics
// are over trials; latencies are in seconds.
type CostRow struct {
	Bits         int
	Params       dhke.Params
	MeanAttempts float64
	StdAttempts  float64
	P5Attempts   float64
	P50Attempts  float64
	P95Attempts  float64
	P50Latency   float64
	P95Latency   float64
	Failures     int
}

type latencySketch struct {
	sketch *ddsketch.DDSketch
}

func newLatencySketch() *latencySketch {
	sketch, err := ddsketch.NewDefaultDDSketch(0.01)
	if err != nil {
		panic(err)
	}
	return &latencySketch{sketch}
}

func (l *latencySketch) record(d time.Duration) {
	if err := l.sketch.Add(d.Seconds()); err != nil {
		panic(err)
	}
}

func (l *latencySketch) getQuantiles(q []float64) []float64 {
	if l.sketch.GetCount() == 0 {
		return make([]float64, len(q))
	}
	res, err := l.sketch.GetValuesAtQuantiles(q)
	if err != nil {
		panic(err)
	}
	return res
}

func moments(xs []float64) (mean, std, p5, p50, p95 float64) {
	if len(xs) == 0 {
		return
	}
	s := stats.Sample{Xs: xs}
	sort.Float64s(s.Xs)
	s.Sorted = true
	return s.Mean(), s.StdDev(), s.Quantile(0.05), s.Quantile(0.50), s.Quantile(0.95)
}

// MeasureCost runs cfg.Trials exchanges on the group of the given size and
// lets an eavesdropper break each of them.
func MeasureCost(bits int, cfg CostConfig, rng *rand.Rand, logger *zap.Logger) (CostRow, error) {
	params, err := dhke.GenerateParams(bits)
	if err != nil {
		return CostRow{}, err
	}
	row := CostRow{Bits: bits, Params: params}
	eve := &dhke.Eavesdropper{Params: params, MaxAttempts: cfg.MaxAttempts}
	latency := newLatencySketch()
	var attempts []float64
	for i := 0; i < cfg.Trials; i++ {
		alice, err := dhke.NewParty(params, rng)
		if err != nil {
			return row, err
		}
		bob, err := dhke.NewParty(params, rng)
		if err != nil {
			return row, err
		}
		tr, err := dhke.Exchange(params, alice, bob)
		if err != nil {
			return row, err
		}
		start := time.Now()
		rec, err := eve.Recover(tr.AlicePublic, tr.BobPublic)
		latency.record(time.Since(start))
		if err != nil {
			// only possible when MaxAttempts cut the search short
			row.Failures += 1
			logger.Debug("eavesdropper gave up", zap.Int("bits", bits), zap.Uint64("attempts", rec.Attempts))
			continue
		}
		if rec.Secret != tr.Secret {
			return row, fmt.Errorf("recovered secret %d, exchanged %d", rec.Secret, tr.Secret)
		}
		attempts = append(attempts, float64(rec.Attempts))
		logger.Debug("eavesdropper recovered secret", zap.Int("bits", bits), zap.Uint64("attempts", rec.Attempts))
	}
	row.MeanAttempts, row.StdAttempts, row.P5Attempts, row.P50Attempts, row.P95Attempts = moments(attempts)
	q := latency.getQuantiles([]float64{0.50, 0.95})
	row.P50Latency, row.P95Latency = q[0], q[1]
	logger.Info("measured brute-force cost",
		zap.Int("bits", bits),
		zap.Stringer("group", params),
		zap.Float64("mean_attempts", row.MeanAttempts),
		zap.Float64("p50_latency_s", row.P50Latency),
		zap.Int("failures", row.Failures))
	return row, nil
}

// RunCost measures every modulus size in cfg.Bits.
func RunCost(cfg CostConfig, rng *rand.Rand, logger *zap.Logger) ([]CostRow, error) {
	var rows []CostRow
	for _, bits := range cfg.Bits {
		row, err := MeasureCost(bits, cfg, rng, logger)
		if err != nil {
			return rows, fmt.Errorf("measuring %d-bit group: %w", bits, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV prints rows in a form ready for plotting attempts against bits.
func WriteCSV(w io.Writer, rows []CostRow) error {
	if _, err := fmt.Fprintln(w, "bits,prime,generator,mean_attempts,std_attempts,p5_attempts,p50_attempts,p95_attempts,p50_latency_s,p95_latency_s,failures"); err != nil {
		return err
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%d,%d,%d,%.2f,%.2f,%.0f,%.0f,%.0f,%.3g,%.3g,%d\n",
			r.Bits, r.Params.Prime, r.Params.Generator,
			r.MeanAttempts, r.StdAttempts, r.P5Attempts, r.P50Attempts, r.P95Attempts,
			r.P50Latency, r.P95Latency, r.Failures)
		if err != nil {
			return err
		}
	}
	return nil
}
