package teardown

import (
	"context"

	"github.com/azureautomation/clean-azure-vm-deletion/internal/azure"
	"github.com/azureautomation/clean-azure-vm-deletion/internal/config"
)

// Context wraps all dependencies needed for a teardown run.
type Context struct {
	context.Context
	Config   *config.Config
	Cloud    azure.ResourceManager
	Observer Observer
	Timeouts *config.Timeouts
}

// NewContext creates a new teardown context.
func NewContext(ctx context.Context, cfg *config.Config, cloud azure.ResourceManager) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Cloud:    cloud,
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
}
