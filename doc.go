// Package so3 implements the special orthogonal group SO(3) of 3D
// rotations, together with the differential geometry needed to use it as a
// manifold type in nonlinear least-squares optimization: exponential and
// logarithm maps, analytic Jacobians for every group operation, and
// interchangeable local coordinate charts.
//
// # GTSAM
//
// This package is a manual, idiomatic Go port of the matrix-backed Rot3
// type of the [GTSAM] C++ library, including its numerically branched
// logarithm map and its Cayley retraction charts.
//
// # Features
//
// We provide the following notable features:
//
//   - Rotation construction from columns, matrix entries, dense matrices,
//     unit quaternions, elementary axis rotations ([Rx], [Ry], [Rz]), and
//     Euler angles ([RzRyRx], [YPR])
//   - The group operations compose, inverse, between, rotate, and unrotate,
//     each with optional analytic Jacobians (see [Rotation.Compose])
//   - The exponential map via Rodrigues' formula ([Expmap]) and its
//     numerically stable inverse ([Logmap])
//   - Three local coordinate charts for optimization, selected by
//     [CoordinatesMode]: the exact exponential-map chart, a fast rational
//     Cayley chart, and a generic reference Cayley chart
//   - Euler-angle extraction via sequential axis elimination ([RQ],
//     [Rotation.XYZ], [Rotation.YPR], [Rotation.RPY])
//
// # Rotations as values
//
// [Rotation] stores the three orthonormal columns of a rotation matrix and
// is immutable: every operation returns a new value, and no operation
// denormalizes the matrix. Points and tangent vectors are [r3.Vector]
// values; Jacobians and matrix views are [mat.Dense] values. Jacobian
// output slots are optional — passing nil skips their computation entirely,
// so the plain operations bear no linearization cost.
//
// # Numerical edge cases
//
// The logarithm map is singular at rotation angles of π and indeterminate
// near 0; [Logmap] branches explicitly at both, recovering the axis from a
// diagonal entry at π and switching to a series approximation near 0. The
// Cayley charts are first-order approximations of the exponential chart and
// are only valid for small tangent vectors.
//
// # Literature
//
//   - [A micro Lie theory for state estimation in robotics] by Solà, Deray and Atchuthan
//   - [Lie Groups for 2D and 3D Transformations] by Eade
//   - [Rodrigues' rotation formula]
//
// [GTSAM]: https://gtsam.org
// [A micro Lie theory for state estimation in robotics]: https://arxiv.org/abs/1812.01537
// [Lie Groups for 2D and 3D Transformations]: https://www.ethaneade.com/lie.pdf
// [Rodrigues' rotation formula]: https://en.wikipedia.org/wiki/Rodrigues%27_rotation_formula
// [r3.Vector]: https://pkg.go.dev/github.com/golang/geo/r3#Vector
// [mat.Dense]: https://pkg.go.dev/gonum.org/v1/gonum/mat#Dense
package so3
