package aliyun_oss

import (
	"github.com/marcomarassi/note-keeper-service/pkg/fileurl"
)

func (p *AliyunOSS) Delete(pathKey string) error {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
	return p.Bucket.DeleteObject(pathKey)
}
