// Package health provides health check endpoints for long-running xwc
// commands.
//
// # Endpoints
//
//   - /healthz: Liveness probe - the process is running
//   - /readyz: Readiness probe - every registered check passes
//   - /version: Build information - version, commit, build time
//
// The watch command mounts them next to the metrics endpoint and registers
// two checks: "watcher" (the initial compile finished and files are being
// watched) and "definitions" (every watched definition currently compiles).
//
// # Usage
//
//	checker := health.New(time.Second)
//	checker.RegisterCheck("definitions", func(ctx context.Context) error {
//	    if n := failing(); n > 0 {
//	        return fmt.Errorf("%d definitions fail to compile", n)
//	    }
//	    return nil
//	})
//	checker.Mount(mux, health.VersionInfo{Version: "0.1.0"})
//
// # Example Response
//
// Degraded response (/readyz, HTTP 503):
//
//	{
//	    "status": "degraded",
//	    "checks": {
//	        "watcher": {"status": "ok", "duration_ns": 2100},
//	        "definitions": {"status": "unhealthy", "message": "1 of 3 definitions fail to compile: daily.yaml"}
//	    },
//	    "timestamp": "2026-10-18T10:30:00Z"
//	}
package health
