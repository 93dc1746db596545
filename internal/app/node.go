package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/podfiler/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/podfiler/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/podfiler/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/podfiler/internal/adapters/lockyaml"           //nolint:depguard // Wired in app layer
	"go.trai.ch/podfiler/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/podfiler/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/podfiler/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/podfiler/internal/core/ports"
	"go.trai.ch/podfiler/internal/engine/podlock"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			podlock.NodeID,
			lockyaml.NodeID,
			fs.FileSystemNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			progrock.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	parser, err := graft.Dep[ports.LockParser](ctx)
	if err != nil {
		return nil, err
	}
	encoder, err := graft.Dep[ports.LockEncoder](ctx)
	if err != nil {
		return nil, err
	}
	files, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.LockInfoStore](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, parser, encoder, files, hasher, store, telemetry, watch, log), nil
}
