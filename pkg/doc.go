// Package pkg provides the libraries behind the seedpacket CLI and server.
//
// # Overview
//
// Seedpacket prints a foldable seed packet template: a front panel with the
// seed name, date and an optional background image, a back panel with notes,
// a rounded closing flap and three glue tabs, all on one letter-size page.
// The pkg directory is organized as:
//
//  1. [packet] - The user's input record, defaults and validation
//  2. [layout] - Pure template geometry (outlines, text anchors, rectangles)
//  3. [render] - PDF drawing of a geometry and a packet
//  4. [assets] - Background image lookup and normalization
//  5. [pipeline] - Orchestration (validate → layout → render) with caching
//  6. [cache], [observability], [errors], [server] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	packet.Input (CLI flags, web form, JSON)
//	         ↓
//	    [packet] package (defaults + validation)
//	         ↓
//	    [layout] package (fixed geometry)
//	         ↓
//	    [render] package (+ [assets] for the background image)
//	         ↓
//	    SeedPacket.pdf
//
// # Quick Start
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/matzehuels/seedpacket/pkg/layout"
//	    "github.com/matzehuels/seedpacket/pkg/packet"
//	    "github.com/matzehuels/seedpacket/pkg/render"
//	)
//
//	p, err := packet.Input{SeedName: "Tomato", Date: "2024-05-01"}.Packet(time.Now())
//	if err != nil {
//	    return err
//	}
//	pdf, err := render.RenderPDF(context.Background(), layout.Compute(), p)
//
// For caching, image lookup and logging in one call, use [pipeline.Runner].
package pkg
