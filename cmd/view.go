package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	encoder "github.com/richinsley/goseascape/encoder"
	"github.com/richinsley/goseascape/glfwcontext"
	"github.com/richinsley/goseascape/graphics"
	"github.com/richinsley/goseascape/headless"
	options "github.com/richinsley/goseascape/options"
	"github.com/richinsley/goseascape/renderer"
	"github.com/urfave/cli"
)

// View opens a window and renders until it is closed.
func View(ctx *cli.Context) error {
	setupLogging(ctx)
	opts := sceneOptions(ctx, "view")

	return withRenderer(opts, true, false, func(sigCtx context.Context, r *renderer.Renderer) error {
		return r.Run(sigCtx)
	})
}

// Record renders Duration*FPS frames offscreen into a video file.
func Record(ctx *cli.Context) error {
	setupLogging(ctx)
	opts := sceneOptions(ctx, "record")

	return withRenderer(opts, false, ctx.Bool("headless"), func(sigCtx context.Context, r *renderer.Renderer) error {
		if err := r.RunOffscreen(sigCtx); err != nil {
			if errors.Is(err, encoder.ErrInterrupted) {
				logger.Warningf("Partial recording written to %s", *opts.OutputFile)
			}
			return err
		}
		logger.Noticef("Successfully rendered to %s", *opts.OutputFile)
		return nil
	})
}

// Snapshot renders a few frames offscreen and saves the last one.
func Snapshot(ctx *cli.Context) error {
	setupLogging(ctx)
	opts := sceneOptions(ctx, "snapshot")

	return withRenderer(opts, false, ctx.Bool("headless"), func(sigCtx context.Context, r *renderer.Renderer) error {
		return r.Snapshot(sigCtx)
	})
}

// withRenderer sets up a graphics context and the renderer, runs fn and
// tears everything down again. fn's context is cancelled on SIGINT or
// SIGTERM. Headless runs use EGL instead of a hidden GLFW window.
func withRenderer(opts *options.SceneOptions, visible, egl bool, fn func(context.Context, *renderer.Renderer) error) error {
	var (
		gctx graphics.Context
		r    *renderer.Renderer
	)
	if egl {
		hctx, err := headless.NewHeadless(*opts.Width, *opts.Height)
		if err != nil {
			return fmt.Errorf("failed to create headless context: %w", err)
		}
		gctx = hctx
	} else {
		if err := glfwcontext.InitGraphics(); err != nil {
			return fmt.Errorf("failed to initialize glfw: %w", err)
		}
		defer glfwcontext.TerminateGraphics()

		wctx, err := glfwcontext.New(opts, visible)
		if err != nil {
			return fmt.Errorf("failed to create window: %w", err)
		}
		wctx.RegisterKeyCallback(glfw.KeyR, func() {
			if r != nil {
				r.ResetCamera()
			}
		})
		gctx = wctx
	}

	var err error
	r, err = renderer.NewRenderer(opts, !visible, gctx)
	if err != nil {
		gctx.Shutdown()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Shutdown()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return fn(sigCtx, r)
}
