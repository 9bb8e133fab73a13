/*
Copyright © 2026 the stormlab authors.
This file is part of stormlab.

stormlab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

stormlab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with stormlab.  If not, see <http://www.gnu.org/licenses/>.
*/

package stormlab

import "github.com/sirupsen/logrus"

// log is the package-level logger the system router writes progress
// entries to. It is logrus's standard logger, so callers that want a
// different destination or formatter configure it through logrus's
// package-level setters before calling RunSimulation (the CLI sends it to
// stderr), mirroring the teacher's convention of keeping computed
// results separate from its logrus-based progress stream.
var log = logrus.StandardLogger()
