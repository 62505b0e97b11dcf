/*
 * Copyright (c) 2026 shenjunzheng@gmail.com
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesignatedMarketAreaPacking(t *testing.T) {
	dma := NewDesignatedMarketArea(825_858)
	assert.Equal(t, 825, dma.Code())
	assert.Equal(t, 858, dma.AreaCode())
	assert.Equal(t, "San Diego, CA", dma.MetroName())
}

func TestDesignatedMarketAreaUnknownFallsBack(t *testing.T) {
	dma := NewDesignatedMarketArea(999_999)
	assert.Equal(t, "Unknown DMA", dma.MetroName())
}
