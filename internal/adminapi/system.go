package adminapi

import (
	"runtime"
	"time"

	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// registerSystemRoutes registers host diagnostics endpoints
func registerSystemRoutes() {
	webserver.ApiGET("/system", systemInfo)
}

func systemInfo(c echo.Context) error {
	info := map[string]interface{}{
		"go_version": runtime.Version(),
		"goroutines": runtime.NumGoroutine(),
		"time":       time.Now(),
	}

	if hostInfo, err := host.Info(); err == nil {
		info["hostname"] = hostInfo.Hostname
		info["os"] = hostInfo.OS
		info["platform"] = hostInfo.Platform
		info["uptime"] = hostInfo.Uptime
	}

	if cpuuse, err := cpu.Percent(0, false); err == nil && len(cpuuse) > 0 {
		info["cpu_percent"] = cpuuse[0]
	}

	if meminfo, err := mem.VirtualMemory(); err == nil {
		info["mem_total_mb"] = meminfo.Total / 1024 / 1024
		info["mem_used_mb"] = meminfo.Used / 1024 / 1024
		info["mem_percent"] = meminfo.UsedPercent
	}

	return ok(c, info)
}
