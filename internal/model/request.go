package model

import "fmt"

// DownloadRequest identifies a single MODIS tile to fetch: a product code,
// an acquisition date (year plus julian day-of-year) and a grid cell in the
// archive's global tiling scheme. Values are fixed once constructed.
type DownloadRequest struct {
	Product   string // short product code, e.g. "MOD09A1"
	Year      int    // 4-digit year
	DayOfYear int    // 1 to 366
	HGrid     int    // horizontal tile index
	VGrid     int    // vertical tile index
}

// Date returns the request date as "YYYY/DDD" for log lines.
func (r DownloadRequest) Date() string {
	return fmt.Sprintf("%04d/%03d", r.Year, r.DayOfYear)
}
