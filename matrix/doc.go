// Package matrix is the numeric core of the wireframe viewer: a dense row-major
// matrix, the homogeneous 4x4 transform factories built on it, and the
// point/column pipeline that applies a transform and performs the perspective
// divide.
//
// Every transform (translation, rotation, scaling, projection) is a 4x4
// homogeneous matrix. A point is promoted to the column [x y z 1], multiplied,
// and normalized by multiplying the whole column with a diagonal 1/w matrix.
// Affine transforms keep w = 1 so the divide is a no-op; the perspective
// matrix makes w grow with depth, which produces foreshortening.
//
// Matrices are values. No method mutates its receiver.
package matrix
