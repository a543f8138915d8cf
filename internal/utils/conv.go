package utils

import (
	"strconv"
)

// StringToInt 宽松转换,转不动就当 0,调用方用默认值兜底
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// StringToUint 同上,负数也归 0,用于路径参数里的数字 ID
func StringToUint(s string) uint {
	i := StringToInt(s)
	if i < 0 {
		return 0
	}
	return uint(i)
}
