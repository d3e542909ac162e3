// Package pointcloud reads 3D point clouds and computes simple point-set
// statistics over them.
//
// What
//
//   - ReadOFF / ReadOFFFile: the OFF mesh format reduced to what the
//     pipeline needs — the vertex coordinates. Face data is ignored;
//     comments and blank lines are skipped; extra per-vertex fields
//     (colors, normals) are tolerated.
//   - DTM: the distance to the empirical measure of the cloud — for each
//     point, the q-power mean of the distances to its k nearest
//     neighbors. A small, brute-force density proxy useful for outlier
//     inspection before triangulating.
//
// Errors
//
//	ErrBadOFF - malformed OFF input (wrapped with line context).
//	ErrBadK   - neighbor count outside [1, n-1].
//	ErrBadQ   - non-positive power.
package pointcloud
