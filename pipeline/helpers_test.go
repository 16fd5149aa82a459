/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"context"
	"fmt"
)

type testTask struct {
	Producer int
	Index    int
}

func (t testTask) String() string {
	return fmt.Sprintf("%v-%v", t.Producer, t.Index)
}

func generateTestTask(_ context.Context, producer, index int) (testTask, error) {
	return testTask{Producer: producer, Index: index}, nil
}

func ignoreTask[T any](_ context.Context, _ T) error {
	return nil
}
