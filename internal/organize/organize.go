package organize

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"gstsort/internal/config"
	"gstsort/internal/faults"
	"gstsort/internal/logging"
	"gstsort/internal/materialize"
	"gstsort/internal/registry"
	"gstsort/internal/report"
	"gstsort/internal/runlog"
	"gstsort/internal/scanner"
	"gstsort/internal/topology"
)

const lockFileName = ".gstsort.lock"

// RunReport is the full outcome of one organization run.
type RunReport struct {
	Scan    *scanner.ScanResult
	Summary *report.RunSummary

	RunID     string
	RunFolder string
	Manifests []string
	// Cancelled reports that the run stopped between clients on context
	// cancellation. Clients processed before the stop are complete.
	Cancelled bool

	ClientsProcessed int
	ClientsFailed    int

	StartedAt time.Time
	EndedAt   time.Time
}

// Organizer wires the scanner, topology builder, and materializer into one
// sequential pipeline.
type Organizer struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *runlog.Store
}

// New returns an Organizer. The run-history store may be nil when history
// is disabled.
func New(cfg *config.Config, logger *slog.Logger, store *runlog.Store) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "organize"),
		store:  store,
	}
}

// Run scans the source folder and organizes every discovered client.
// Per-client failures are recorded and the batch continues; only setup
// failures (scan, topology, lock) abort the run.
func (o *Organizer) Run(ctx context.Context) (*RunReport, error) {
	started := time.Now()

	scanResult, err := scanner.Scan(ctx, o.cfg.Paths.SourceDir, o.logger)
	if err != nil {
		return nil, err
	}

	builder, err := topology.NewBuilder(o.cfg, started, o.logger)
	if err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(o.cfg.Paths.TargetDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "organize", "lock",
			"cannot acquire target folder lock", err)
	}
	if !locked {
		return nil, faults.Wrap(faults.ErrValidation, "organize", "lock",
			"another organization run is already using the target folder", nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			o.logger.Warn("failed to release target folder lock", logging.Error(err))
		}
	}()

	runFolder, err := builder.RunFolder()
	if err != nil {
		return nil, err
	}

	summary := &report.RunSummary{
		Mode:       builder.Mode(),
		Timestamp:  started,
		RunFolder:  runFolder,
		Variations: scanResult.Variations,
	}
	result := &RunReport{
		Scan:      scanResult,
		Summary:   summary,
		RunFolder: runFolder,
		StartedAt: started,
	}

	placer := materialize.New(builder.Mode(), started, o.logger)

	for _, client := range scanResult.Clients {
		select {
		case <-ctx.Done():
			result.Cancelled = true
			o.logger.Warn("run cancelled, stopping before next client",
				logging.String("next_client", client.Key),
				logging.Int("clients_processed", result.ClientsProcessed))
		default:
		}
		if result.Cancelled {
			break
		}
		o.organizeClient(client, builder, placer, result)
	}

	result.EndedAt = time.Now()
	// History is written even for cancelled runs, so detach from ctx.
	o.recordRun(context.WithoutCancel(ctx), result)

	o.logger.Info("organization run finished",
		logging.String("run_folder", runFolder),
		logging.Int("clients", result.ClientsProcessed),
		logging.Int("client_failures", result.ClientsFailed),
		logging.Int("copied", summary.Copied),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
		logging.Bool("cancelled", result.Cancelled))
	return result, nil
}

func (o *Organizer) organizeClient(client *registry.ClientRecord, builder *topology.Builder,
	placer *materialize.Materializer, result *RunReport) {

	folders, err := builder.BuildClient(client)
	if err != nil {
		result.ClientsFailed++
		result.Summary.AddError(client.Key, err.Error())
		o.logger.Error("client folder setup failed, continuing with remaining clients",
			logging.String("client", client.Key),
			logging.Error(err))
		return
	}

	placements := placer.PlaceClient(client, folders)
	result.Summary.AddClient(client, placements)
	result.ClientsProcessed++

	manifest, err := report.WriteManifest(client, folders, placements, builder.Mode(), result.StartedAt)
	if err != nil {
		o.logger.Warn("manifest write failed",
			logging.String("client", client.Key),
			logging.Error(err))
	} else {
		result.Manifests = append(result.Manifests, manifest)
	}
}

// recordRun persists the run to history. History failures only log; the
// organized tree on disk is the source of truth.
func (o *Organizer) recordRun(ctx context.Context, result *RunReport) {
	if o.store == nil {
		return
	}

	clients := make([]runlog.ClientResult, 0, len(result.Summary.Clients))
	for _, row := range result.Summary.Clients {
		clients = append(clients, runlog.ClientResult{
			Key:          fmt.Sprintf("%s-%s", row.Client, row.Code),
			Client:       row.Client,
			Jurisdiction: row.Jurisdiction,
			Code:         row.Code,
			FileCount:    row.Files,
			TotalSize:    row.Size,
			Completeness: row.Completeness,
			Status:       row.Status,
		})
	}

	id, err := o.store.RecordRun(ctx, runlog.Run{
		StartedAt: result.StartedAt,
		EndedAt:   result.EndedAt,
		Mode:      string(result.Summary.Mode),
		RunFolder: result.RunFolder,
		Copied:    result.Summary.Copied,
		Skipped:   result.Summary.Skipped,
		Failed:    result.Summary.Failed,
	}, clients)
	if err != nil {
		o.logger.Warn("run history not recorded", logging.Error(err))
		return
	}
	result.RunID = id
}
