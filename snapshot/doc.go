// Package snapshot is the wire form of a core.Graph and of the topology input.
//
// Graph snapshot shape:
//
//	{
//	  "nodes": [{"id": "0_0", "i": 0, "j": 0}, ...],
//	  "edges": [{"from": "0_0", "to": "1_0", "length": 0.5}, ...],
//	  "meta":  {"nx": 4, "ny": 3, "scaleX": 0.5, "scaleY": 0.5,
//	            "imageWidth": 640, "imageHeight": 480, "walls": [x, y, w, h]}
//	}
//
// A graph encodes to a Document and back to an equal graph: same node set,
// same edge set and lengths, same meta. Decoding re-validates every graph
// invariant through core.Builder, so a hand-edited or corrupted document is
// rejected with an error wrapping core.ErrInvalidArgument rather than loaded.
//
// The document {"nodes": [], "edges": [], "meta": null} means "no graph".
//
// Topology is the detector's output shape ({walls, shelves, image_width,
// image_height}) and converts to gridgraph.Topology.
package snapshot
