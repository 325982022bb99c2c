package util

import "github.com/ratel-online/mahjong/mahjong/tile"

// SliceCopy 拷贝一个切片
func SliceCopy(s []tile.Tile) []tile.Tile {
	var slice = make([]tile.Tile, len(s))
	copy(slice, s)
	return slice
}

// IndexOf returns the first position of finder in slice, or -1.
func IndexOf(finder tile.Tile, slice []tile.Tile) int {
	for i, v := range slice {
		if v == finder {
			return i
		}
	}
	return -1
}

// Census counts copies per tile identity.
func Census(slice []tile.Tile) map[tile.Tile]int {
	var m = map[tile.Tile]int{}
	for _, t := range slice {
		m[t]++
	}
	return m
}

// Reverse 反转切片
func Reverse(s []tile.Tile) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
