// Package aladhan provides a client for the Aladhan prayer times API.
//
// This package implements the timings endpoint of the Aladhan API v1,
// which computes daily prayer times for a coordinate pair using one of
// the supported calculation methods. It is designed to be used as a
// standalone SDK.
//
// Example usage:
//
//	import "github.com/jfmyers9/homepod/pkg/aladhan"
//
//	client := aladhan.NewClient(aladhan.Config{})
//
//	resp, err := client.Timings(ctx, aladhan.TimingsRequest{
//	    Latitude:  51.5074,
//	    Longitude: -0.1278,
//	    Method:    aladhan.MethodID(aladhan.MethodISNA),
//	    Date:      time.Now(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Fajr:", resp.Timings["Fajr"])
package aladhan
