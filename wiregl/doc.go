// Package wiregl is a small software wireframe engine for the viewer.
//
// It owns the mutable half of the pipeline: a Shape (vertices plus edge
// topology) that transforms are applied to, a Controller that turns discrete
// user commands into matrix factory calls and holds the active projection,
// and a Renderer that draws projected edges into a caller-provided Target.
//
// Pipeline (fixed):
//
//	Command → Controller → Shape.ApplyTransform → Shape.ProjectedEdges → Renderer → Target.
//
// All numeric work is delegated to package matrix. There is no clipping,
// culling or depth buffer; every edge is drawn as a straight line.
package wiregl
